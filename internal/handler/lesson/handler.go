package lesson

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	lessonService "github.com/howtolabs/howto-teacher/internal/service/lesson"
	"github.com/howtolabs/howto-teacher/pkg/utils"
)

// Handler exposes lesson processing over HTTP.
type Handler struct {
	lessons *lessonService.Service
}

// New creates the lesson handler.
func New(lessons *lessonService.Service) *Handler {
	return &Handler{lessons: lessons}
}

// RegisterRoutes mounts the lesson routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/process", h.handleProcess)
	r.Post("/reset", h.handleReset)
}

func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text      string `json:"text"`
		SessionID string `json:"session_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question := strings.TrimSpace(payload.Text)
	if question == "" {
		utils.RespondError(w, http.StatusBadRequest, "empty question")
		return
	}

	result, err := h.lessons.Process(r.Context(), strings.TrimSpace(payload.SessionID), question)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"result":     result.Answer,
		"session_id": result.SessionID,
	})
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.SessionID) == "" {
		utils.RespondError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	h.lessons.Reset(r.Context(), payload.SessionID)
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"reset": true})
}
