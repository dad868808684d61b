// Package modkit provides module wiring and core deps
package modkit

import (
	"lingooo/internal/core/relay"
	"lingooo/internal/locale"
	"lingooo/internal/platform/config"
	"lingooo/internal/platform/logger"
	"lingooo/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Relay   *relay.Relay
	Locales *locale.Catalog
	Metrics *metrics.Set
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check optional handles
func (d Deps) ZeroOK() bool { return true }
