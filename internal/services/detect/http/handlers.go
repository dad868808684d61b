// Package http provides http transport for detection
package http

import (
	stdhttp "net/http"

	"lingooo/internal/modkit/httpkit"
	"lingooo/internal/services/detect/domain"
	svc "lingooo/internal/services/detect/service"
)

// Register mounts detect endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.DetectInput](r, "/", h.detect)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /detect Detect detectText
// @Summary Detect the language of a text
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text to analyze"
// @Success 200 {object} domain.Detection "ok"
// @Router /detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}
