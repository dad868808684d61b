// Package metrics exposes the process Prometheus registry and the counters
// shared across services
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Set bundles the registry and the app counters so the composition root owns
// one explicit object instead of package-level state
type Set struct {
	Registry *prometheus.Registry

	// relay
	EventsEmitted    prometheus.Counter
	ListenerFailures prometheus.Counter
	Subscribers      prometheus.Gauge

	// detect
	DetectRequests *prometheus.CounterVec

	// locale
	BundleReloads prometheus.Counter
}

// New builds a Set with a fresh registry and go/process collectors registered
func New() *Set {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Set{
		Registry: reg,
		EventsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lingooo_relay_events_emitted_total",
			Help: "Detection events pushed through the relay.",
		}),
		ListenerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lingooo_relay_listener_failures_total",
			Help: "Listener panics recovered during emit.",
		}),
		Subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lingooo_relay_subscribers",
			Help: "Currently registered relay listeners.",
		}),
		DetectRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lingooo_detect_requests_total",
			Help: "Detection requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		BundleReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lingooo_locale_bundle_reloads_total",
			Help: "Locale override bundle reloads.",
		}),
	}
	reg.MustRegister(s.EventsEmitted, s.ListenerFailures, s.Subscribers, s.DetectRequests, s.BundleReloads)
	return s
}

// Handler returns the /metrics handler for this registry
func (s *Set) Handler() http.Handler {
	return promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})
}
