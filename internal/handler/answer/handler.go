package answer

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/cm-assistant/backend/internal/config"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/answer"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/language"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/persona"
	"github.com/zhouzirui/cm-assistant/backend/internal/service/orchestrator"
	"github.com/zhouzirui/cm-assistant/backend/pkg/utils"
)

// Handler accepts submissions and returns answer sets or their document.
type Handler struct {
	orchestrator *orchestrator.Service
}

// New creates an answer handler.
func New(svc *orchestrator.Service) *Handler {
	return &Handler{orchestrator: svc}
}

// RegisterRoutes mounts the submission routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/answers", h.handleAnswer)
	r.Post("/answers/export", h.handleExport)
}

type submission struct {
	Question string   `json:"question"`
	Language string   `json:"language"`
	Personas []string `json:"personas"`
	Mode     string   `json:"mode,omitempty"`
}

type entryView struct {
	PersonaID string         `json:"personaId"`
	Label     string         `json:"label"`
	Icon      string         `json:"icon,omitempty"`
	StyleKey  string         `json:"styleKey"`
	Text      string         `json:"text"`
	Failed    bool           `json:"failed"`
	Failure   answer.Failure `json:"failure,omitempty"`
}

type answerResponse struct {
	ID       string            `json:"id"`
	Mode     string            `json:"mode"`
	Question string            `json:"question"`
	Language language.Language `json:"language"`
	Answers  []entryView       `json:"answers"`
}

func (h *Handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	query, opts, ok := decodeSubmission(w, r)
	if !ok {
		return
	}

	outcome, err := h.orchestrator.Run(r.Context(), query, opts...)
	if err != nil {
		respondRunError(w, err)
		return
	}

	resp := answerResponse{
		ID:       outcome.ID,
		Mode:     string(outcome.Mode),
		Question: outcome.Query.Question,
		Language: outcome.Language,
	}
	for _, e := range outcome.Answers.Entries() {
		resp.Answers = append(resp.Answers, entryView{
			PersonaID: e.PersonaID,
			Label:     e.Label,
			Icon:      e.Icon,
			StyleKey:  e.StyleKey,
			Text:      e.Text,
			Failed:    e.Failed(),
			Failure:   e.Failure,
		})
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	query, opts, ok := decodeSubmission(w, r)
	if !ok {
		return
	}

	outcome, artifact, err := h.orchestrator.Export(r.Context(), query, opts...)
	if err != nil {
		respondRunError(w, err)
		return
	}

	w.Header().Set("X-Submission-Id", outcome.ID)
	utils.RespondAttachment(w, artifact.Filename, artifact.ContentType, artifact.Data)
}

func decodeSubmission(w http.ResponseWriter, r *http.Request) (answer.Query, []orchestrator.RunOption, bool) {
	var payload submission
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return answer.Query{}, nil, false
	}

	var opts []orchestrator.RunOption
	if payload.Mode != "" {
		mode, err := config.ParseDispatchMode(payload.Mode)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return answer.Query{}, nil, false
		}
		opts = append(opts, orchestrator.WithMode(mode))
	}

	return answer.Query{
		Question: payload.Question,
		Language: payload.Language,
		Personas: payload.Personas,
	}, opts, true
}

func respondRunError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orchestrator.ErrEmptyQuestion), errors.Is(err, orchestrator.ErrNoPersonas):
		utils.RespondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, persona.ErrUnknownPersona), errors.Is(err, language.ErrUnknownLanguage):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[answer] submission failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to produce answers")
	}
}
