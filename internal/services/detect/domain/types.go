// Package domain defines the core types and interfaces for the detect service
package domain

import (
	"lingooo/internal/core/relay"
	"lingooo/internal/core/textkit"
)

// DetectInput is a single detection request
type DetectInput struct {
	// Text to analyze. Required
	Text string `json:"text" validate:"required,max=4000"`

	// Provider override; defaults to the module-configured provider
	Provider string `json:"provider,omitempty" validate:"omitempty,oneof=heuristic remote manual"`

	// Lang is the caller-asserted language. Required for the manual
	// provider, ignored by the others
	Lang string `json:"lang,omitempty" validate:"omitempty,bcp47"`

	// Confidence accompanies a manual assertion; defaults to 1
	Confidence *float64 `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// Detection is the outcome of a single request
type Detection struct {
	Event  relay.Event  `json:"event"`
	Kind   textkit.Kind `json:"kind"`
	Script string       `json:"script,omitempty"`
}
