// Package module wires the glossary into the API using modkit
package module

import (
	"net/http"

	modkit "lingooo/internal/modkit"
	"lingooo/internal/modkit/httpkit"
	str "lingooo/internal/platform/strings"
	gloshttp "lingooo/internal/services/glossary/http"
	glossvc "lingooo/internal/services/glossary/service"
)

// Ports exposed by the glossary module
type Ports struct {
	Glossary glossvc.Service
}

// Module implements the glossary module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc glossvc.Service
}

// New constructs the glossary module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("glossary"),
		modkit.WithPrefix("/glossary"),
	}, opts...)...)

	if deps.Locales == nil {
		panic("glossary module: Deps.Locales is required")
	}
	svc := glossvc.New(deps.Locales)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Glossary: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		gloshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
