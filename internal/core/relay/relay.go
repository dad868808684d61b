// Package relay is the in-memory broadcast seam between language detection
// and whatever wants to hear about it. Emit is synchronous: every listener
// registered at emit time runs inline, in subscription order, and a panicking
// listener never stops the rest
package relay

import (
	"sync"

	"lingooo/internal/platform/logger"
)

// Listener receives emitted events
type Listener func(Event)

// FailureHook is called after a listener panic is recovered (metrics seam)
type FailureHook func()

// Option configures a Relay
type Option func(*Relay)

// WithLogger sets the logger used for recovered listener panics
func WithLogger(l logger.Logger) Option {
	return func(r *Relay) { r.log = l }
}

// WithFailureHook registers a callback fired once per recovered listener panic
func WithFailureHook(fn FailureHook) Option {
	return func(r *Relay) { r.onFailure = fn }
}

// sub is one registration; identity matters so the same func can be
// subscribed twice and cancelled independently
type sub struct {
	fn Listener
}

// Relay fans events out to subscribers. Construct one at the composition
// root and hand it to producers and consumers; there is no package-level
// instance on purpose
type Relay struct {
	mu        sync.Mutex
	subs      []*sub
	log       logger.Logger
	onFailure FailureHook
}

// New constructs an empty Relay
func New(opts ...Option) *Relay {
	r := &Relay{log: *logger.Named("relay")}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Subscribe appends fn to the subscriber list and returns a cancel func
// that removes exactly this registration. Calling cancel twice is a no-op
func (r *Relay) Subscribe(fn Listener) (cancel func()) {
	if fn == nil {
		panic("relay: nil listener")
	}
	s := &sub{fn: fn}

	r.mu.Lock()
	r.subs = append(r.subs, s)
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, cur := range r.subs {
			if cur == s {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				return
			}
		}
		// already removed; second cancel or Clear happened
	}
}

// Emit invokes every listener registered at call time, in subscription
// order, and returns once all have run. Listener panics are recovered and
// logged so delivery to the rest is never blocked
func (r *Relay) Emit(ev Event) {
	// snapshot so listeners may subscribe or cancel reentrantly
	r.mu.Lock()
	snapshot := make([]*sub, len(r.subs))
	copy(snapshot, r.subs)
	r.mu.Unlock()

	for _, s := range snapshot {
		r.invoke(s.fn, ev)
	}
}

func (r *Relay) invoke(fn Listener, ev Event) {
	defer func() {
		if v := recover(); v != nil {
			r.log.Error().
				Str("event_id", ev.ID).
				Str("provider", string(ev.Provider)).
				Interface("panic", v).
				Msg("listener panicked during emit")
			if r.onFailure != nil {
				r.onFailure()
			}
		}
	}()
	fn(ev)
}

// Clear removes all subscribers
func (r *Relay) Clear() {
	r.mu.Lock()
	r.subs = nil
	r.mu.Unlock()
}

// Len returns the current subscriber count
func (r *Relay) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
