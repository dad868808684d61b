// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"lingooo/internal/core/relay"
	"lingooo/internal/core/version"
	"lingooo/internal/locale"
	"lingooo/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Locales     *locale.Catalog
	Relay       *relay.Relay
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/locales", h.locales)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"lingooo-api"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"locales"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"default bundle empty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name      string `json:"name"      example:"lingooo-api"`
	Started   string `json:"started"   example:"2025-09-03T13:00:00Z"`
	Uptime    int64  `json:"uptime"    example:"300"`
	Listeners int    `json:"listeners" example:"2"`
}

// LocalesResponse lists the loaded bundle languages
type LocalesResponse struct {
	Default   string   `json:"default"   example:"en"`
	Languages []string `json:"languages" example:"en,ja"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	loc := ReadyCheck{Name: "locales", Status: "skipped"}
	if h.deps.Locales != nil {
		if h.deps.Locales.Ready() {
			loc.Status = "ok"
		} else {
			loc.Status = "fail"
			loc.Error = "default bundle empty"
		}
	}

	overall := "ok"
	if loc.Status == "fail" {
		overall = "fail"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{loc},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	out := ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}
	if h.deps.Relay != nil {
		out.Listeners = h.deps.Relay.Len()
	}
	return out, nil
}

// swagger:route GET /meta/locales Meta metaLocales
// @Summary Loaded locale bundles
// @Tags Meta
// @Produce json
// @Success 200 type LocalesResponse ok
// @Router /meta/locales [get]
func (h *handlers) locales(_ *http.Request) (any, error) {
	out := LocalesResponse{Default: locale.DefaultLang}
	if h.deps.Locales != nil {
		out.Languages = h.deps.Locales.Languages()
	}
	return out, nil
}
