package quiz

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/einstufung/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Quiz is the single endpoint for both phases of an attempt, dispatched on
// the request's phase tag.
func (h *Handler) Quiz(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data"})
		return
	}

	switch req.Phase {
	case models.PhaseQuiz:
		h.handleQuiz(w, r, req)
	case models.PhaseFeedback:
		h.handleFeedback(w, r, req)
	default:
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data"})
	}
}

func (h *Handler) handleQuiz(w http.ResponseWriter, r *http.Request, req models.QuizRequest) {
	if req.QuestionIndex == nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data"})
		return
	}

	// Validate the option letter before any side effect.
	var selected *models.Option
	if req.Answer != nil {
		opt := models.Option(strings.ToUpper(strings.TrimSpace(*req.Answer)))
		if !models.ValidOptions[opt] {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data"})
			return
		}
		selected = &opt
	}

	question, ok := h.service.Question(*req.QuestionIndex)
	if !ok {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question not found"})
		return
	}

	sessionID := h.service.ResolveSession(req.SessionID)

	// The submitted answer belongs to the previous question; index 0 has none.
	if selected != nil && *req.QuestionIndex > 0 {
		h.service.RecordAnswer(r.Context(), sessionID, *req.QuestionIndex, *selected)
	}

	writeJSON(w, http.StatusOK, models.QuestionResponse{
		Question:  question.Prompt,
		Options:   question.Options,
		SessionID: sessionID,
	})
}

func (h *Handler) handleFeedback(w http.ResponseWriter, r *http.Request, req models.QuizRequest) {
	sessionID := h.service.ResolveSession(req.SessionID)

	feedback, err := h.service.Feedback(r.Context(), sessionID, clientIP(r))
	if err != nil {
		log.Printf("[handler] feedback error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate feedback"})
		return
	}

	writeJSON(w, http.StatusOK, models.FeedbackResponse{
		Feedback:  feedback,
		SessionID: sessionID,
	})
}

// clientIP extracts a best-effort network address for the result record.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
