// Package api provides the HTTP API for the application
package api

import (
	"lingooo/internal/core/relay"
	"lingooo/internal/locale"
	"lingooo/internal/platform/config"
	"lingooo/internal/platform/logger"
	"lingooo/internal/platform/metrics"
	phttp "lingooo/internal/platform/net/http"

	"lingooo/internal/modkit"
	"lingooo/internal/modkit/httpkit"
	"lingooo/internal/modkit/module"
	"lingooo/internal/modkit/swaggerkit"

	metamod "lingooo/internal/services/api/meta/module"
	detectmod "lingooo/internal/services/detect/module"
	glossarymod "lingooo/internal/services/glossary/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Relay          *relay.Relay
	Locales        *locale.Catalog
	Metrics        *metrics.Set
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Relay:   opt.Relay,
		Locales: opt.Locales,
		Metrics: opt.Metrics,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		detectmod.New(deps),
		glossarymod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler + metrics live on the root router
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
		if opt.Metrics != nil {
			r.Handle("/metrics", opt.Metrics.Handler())
		}

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
