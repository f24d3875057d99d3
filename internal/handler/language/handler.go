package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/cm-assistant/backend/internal/model/language"
	"github.com/zhouzirui/cm-assistant/backend/pkg/utils"
)

// Handler serves the response language table.
type Handler struct {
	languages *language.Directory
}

func New(languages *language.Directory) *Handler {
	return &Handler{languages: languages}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/languages", h.handleListLanguages)
}

type languageView struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	NativeName string `json:"nativeName"`
}

func (h *Handler) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	items := h.languages.List()
	views := make([]languageView, 0, len(items))
	for _, l := range items {
		views = append(views, languageView{Name: l.Name, Code: l.Code, NativeName: l.NativeName()})
	}
	utils.RespondJSON(w, http.StatusOK, views)
}
