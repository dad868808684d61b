// Package service implements the detect service
package service

import (
	"context"

	"lingooo/internal/core/relay"
	"lingooo/internal/core/textkit"
	perr "lingooo/internal/platform/errors"
	"lingooo/internal/platform/logger"
	"lingooo/internal/platform/metrics"
	"lingooo/internal/services/detect/domain"
)

// Service defines the detect service contract
type Service interface {
	domain.DetectorPort
}

// Config controls provider selection and remote behavior
type Config struct {
	// DefaultProvider is used when the request does not name one
	DefaultProvider relay.Provider
}

// Svc implements the detect service
type Svc struct {
	relay     *relay.Relay
	providers map[relay.Provider]provider
	cfg       Config
	log       logger.Logger
	met       *metrics.Set
}

// New constructs a detect service. The relay is required; detections are
// useless if nobody can hear them
func New(rl *relay.Relay, heur, remote, manual provider, cfg Config, log logger.Logger, met *metrics.Set) *Svc {
	if rl == nil {
		panic("detect.Service requires a non nil relay")
	}
	if cfg.DefaultProvider == "" {
		cfg.DefaultProvider = relay.ProviderHeuristic
	}
	return &Svc{
		relay: rl,
		providers: map[relay.Provider]provider{
			relay.ProviderHeuristic: heur,
			relay.ProviderRemote:    remote,
			relay.ProviderManual:    manual,
		},
		cfg: cfg,
		log: log,
		met: met,
	}
}

// Detect resolves the provider, runs it, emits the resulting event through
// the relay and returns the detection. Listener failures never surface here
func (s *Svc) Detect(ctx context.Context, in domain.DetectInput) (domain.Detection, error) {
	prov := s.cfg.DefaultProvider
	if in.Provider != "" {
		prov = relay.Provider(in.Provider)
	}
	p, ok := s.providers[prov]
	if !ok || p == nil {
		s.count(prov, "rejected")
		return domain.Detection{}, perr.InvalidArgf("unknown provider %q", prov)
	}

	lang, conf, err := p.detect(ctx, in)
	if err != nil {
		s.count(prov, "error")
		return domain.Detection{}, err
	}

	ev := relay.NewEvent(in.Text, lang, conf, prov)
	s.relay.Emit(ev)
	s.count(prov, "ok")

	script, _, _ := guessScript(in.Text)
	s.log.Debug().
		Str("provider", string(prov)).
		Str("lang", lang).
		Float64("confidence", conf).
		Msg("detection emitted")

	return domain.Detection{
		Event:  ev,
		Kind:   textkit.Classify(in.Text),
		Script: script,
	}, nil
}

func (s *Svc) count(p relay.Provider, outcome string) {
	if s.met != nil {
		s.met.DetectRequests.WithLabelValues(string(p), outcome).Inc()
	}
}
