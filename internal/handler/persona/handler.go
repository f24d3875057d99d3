package persona

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/cm-assistant/backend/internal/model/persona"
	"github.com/zhouzirui/cm-assistant/backend/pkg/utils"
)

// Handler serves the persona catalogue.
type Handler struct {
	personas persona.Registry
}

// New creates a persona handler.
func New(personas persona.Registry) *Handler {
	return &Handler{
		personas: personas,
	}
}

// RegisterRoutes mounts persona routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/personas", h.handleListPersonas)
}

func (h *Handler) handleListPersonas(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.personas.List())
}
