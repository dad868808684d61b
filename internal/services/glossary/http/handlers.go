// Package http provides http transport for the glossary view models
package http

import (
	stdhttp "net/http"

	"lingooo/internal/modkit/httpkit"
	"lingooo/internal/services/glossary/domain"
	svc "lingooo/internal/services/glossary/service"
)

// Register mounts glossary endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.DefinitionListInput](r, "/definitions", h.definitions)
	httpkit.PostJSON[domain.ExampleCardInput](r, "/card", h.card)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /glossary/definitions Glossary glossaryDefinitions
// @Summary Build a localized definition list
// @Tags Glossary
// @Accept json
// @Produce json
// @Param payload body domain.DefinitionListInput true "Entries"
// @Success 200 {object} domain.DefinitionList "ok"
// @Router /glossary/definitions [post]
func (h *handlers) definitions(r *stdhttp.Request, in domain.DefinitionListInput) (any, error) {
	return h.svc.BuildDefinitionList(r.Context(), in)
}

// swagger:route POST /glossary/card Glossary glossaryCard
// @Summary Build a localized example card
// @Tags Glossary
// @Accept json
// @Produce json
// @Param payload body domain.ExampleCardInput true "Card source"
// @Success 200 {object} domain.ExampleCard "ok"
// @Router /glossary/card [post]
func (h *handlers) card(r *stdhttp.Request, in domain.ExampleCardInput) (any, error) {
	return h.svc.BuildExampleCard(r.Context(), in)
}
