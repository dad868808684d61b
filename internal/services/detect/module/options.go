package module

import (
	"time"

	"lingooo/internal/platform/config"
)

// Options holds configuration settings for the detect module
type Options struct {
	Provider      string
	RemoteURL     string
	RemoteTimeout time.Duration
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	df := cfg.Prefix("CORE_DETECT_")
	return Options{
		Provider:      df.MayEnum("PROVIDER", "heuristic", "heuristic", "remote", "manual"),
		RemoteURL:     df.MayString("REMOTE_URL", ""),
		RemoteTimeout: df.MayDuration("REMOTE_TIMEOUT", 5*time.Second),
	}
}
