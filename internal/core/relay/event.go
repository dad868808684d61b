package relay

import (
	"time"

	"github.com/google/uuid"
)

// Provider identifies where a detection result came from
type Provider string

// closed set; validate with Valid before constructing events from user input
const (
	ProviderHeuristic Provider = "heuristic"
	ProviderRemote    Provider = "remote"
	ProviderManual    Provider = "manual"
)

// Valid reports whether p is one of the known providers
func (p Provider) Valid() bool {
	switch p {
	case ProviderHeuristic, ProviderRemote, ProviderManual:
		return true
	}
	return false
}

// Event is one language-detection result and its provenance.
// Events are value types: build one, emit it, forget it - the relay keeps
// no history
type Event struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Lang       string   `json:"lang"`
	Confidence float64  `json:"confidence"`
	Provider   Provider `json:"provider"`
	EmittedAt  int64    `json:"emitted_at"` // unix millis, producer assigned
}

// NewEvent stamps an id and timestamp onto a detection result
func NewEvent(text, lang string, confidence float64, provider Provider) Event {
	return Event{
		ID:         uuid.NewString(),
		Text:       text,
		Lang:       lang,
		Confidence: confidence,
		Provider:   provider,
		EmittedAt:  time.Now().UnixMilli(),
	}
}
