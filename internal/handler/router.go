package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/cm-assistant/backend/internal/handler/answer"
	"github.com/zhouzirui/cm-assistant/backend/internal/handler/language"
	"github.com/zhouzirui/cm-assistant/backend/internal/handler/persona"
	middlewarePkg "github.com/zhouzirui/cm-assistant/backend/internal/middleware"
	languageModel "github.com/zhouzirui/cm-assistant/backend/internal/model/language"
	personaModel "github.com/zhouzirui/cm-assistant/backend/internal/model/persona"
	"github.com/zhouzirui/cm-assistant/backend/internal/service/orchestrator"
	"github.com/zhouzirui/cm-assistant/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(personas personaModel.Registry, languages *languageModel.Directory, svc *orchestrator.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		persona.New(personas).RegisterRoutes(api)
		language.New(languages).RegisterRoutes(api)

		if svc == nil {
			unavailable := func(w http.ResponseWriter, r *http.Request) {
				utils.RespondError(w, http.StatusServiceUnavailable, "answer service unavailable")
			}
			api.Post("/answers", unavailable)
			api.Post("/answers/export", unavailable)
			return
		}
		answer.New(svc).RegisterRoutes(api)
	})

	return r
}
