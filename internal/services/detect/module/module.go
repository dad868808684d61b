// Package module wires detection into the API using modkit
package module

import (
	"net/http"

	"lingooo/internal/core/relay"
	modkit "lingooo/internal/modkit"
	"lingooo/internal/modkit/httpkit"
	str "lingooo/internal/platform/strings"
	dethttp "lingooo/internal/services/detect/http"
	detsvc "lingooo/internal/services/detect/service"
)

// Ports exposed by the detect module
type Ports struct {
	Detector detsvc.Service
}

// Module implements the detect module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc detsvc.Service
}

// New constructs the detect module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("detect"),
		modkit.WithPrefix("/detect"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	if cfg.Provider == string(relay.ProviderRemote) && cfg.RemoteURL == "" {
		panic("detect module: CORE_DETECT_PROVIDER=remote requires CORE_DETECT_REMOTE_URL")
	}

	svc := detsvc.New(
		deps.Relay,
		detsvc.NewHeuristic(),
		detsvc.NewRemote(cfg.RemoteURL, cfg.RemoteTimeout),
		detsvc.NewManual(),
		detsvc.Config{DefaultProvider: relay.Provider(cfg.Provider)},
		deps.Log.With().Str("component", "detect").Logger(),
		deps.Metrics,
	)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Detector: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dethttp.Register(r, m.svc)
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
