// @title         Lingooo API
// @version       0.1.0
// @description   Language detection, localized glossary view models and locale bundles

package main

import (
	"context"
	"os/signal"
	"syscall"

	"lingooo/internal/core/relay"
	"lingooo/internal/locale"
	"lingooo/internal/platform/config"
	"lingooo/internal/platform/logger"
	"lingooo/internal/platform/metrics"
	phttp "lingooo/internal/platform/net/http"

	"lingooo/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	locCfg := root.Prefix("CORE_LOCALE_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	met := metrics.New()

	// locale catalog: embedded bundles plus optional hot-reloaded overrides
	cat, err := locale.New(
		locale.WithOverrideDir(locCfg.MayString("DIR", "")),
		locale.WithReloadHook(func() { met.BundleReloads.Inc() }),
	)
	if err != nil {
		l.Panic().Err(err).Msg("locale catalog failed to load")
	}
	go func() {
		if err := cat.Watch(ctx); err != nil {
			l.Error().Err(err).Msg("locale watcher stopped")
		}
	}()

	// the relay every detection flows through
	rl := relay.New(
		relay.WithLogger(*l),
		relay.WithFailureHook(func() { met.ListenerFailures.Inc() }),
	)
	rl.Subscribe(func(ev relay.Event) {
		met.EventsEmitted.Inc()
		l.Info().
			Str("event_id", ev.ID).
			Str("lang", ev.Lang).
			Str("provider", string(ev.Provider)).
			Float64("confidence", ev.Confidence).
			Msg("detection event")
	})
	met.Subscribers.Set(float64(rl.Len()))

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Relay:          rl,
			Locales:        cat,
			Metrics:        met,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run until signaled, then drain
	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case <-ctx.Done():
		l.Info().Msg("shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			l.Error().Err(err).Msg("shutdown failed")
		}
		<-errc
	case err := <-errc:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	}
}
