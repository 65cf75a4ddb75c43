package admin

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/einstufung/backend/internal/models"
)

// Result and analytics slices in the stats view are capped: the admin screen
// shows recent activity, not the full history.
const (
	resultsLimit   = 50
	analyticsLimit = 100
)

// StatsStore is the read surface the admin view needs. *quiz.Store implements it.
type StatsStore interface {
	CountResults(ctx context.Context) (int, error)
	RecentResults(ctx context.Context, limit int) ([]models.QuizResult, error)
	RecentAnalytics(ctx context.Context, limit int) ([]models.AnswerAnalytics, error)
	LevelDistribution(ctx context.Context) (models.LevelDistribution, error)
}

type Handler struct {
	store StatsStore
}

func NewHandler(store StatsStore) *Handler {
	return &Handler{store: store}
}

// Stats reports aggregate counts plus recent result and analytics slices over
// the persisted collections. It is a pure reporting view: filtering and
// counting, no scoring logic.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.store.CountResults(ctx)
	if err != nil {
		log.Printf("[admin] count results: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch statistics"})
		return
	}

	results, err := h.store.RecentResults(ctx, resultsLimit)
	if err != nil {
		log.Printf("[admin] recent results: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch statistics"})
		return
	}

	analytics, err := h.store.RecentAnalytics(ctx, analyticsLimit)
	if err != nil {
		log.Printf("[admin] recent analytics: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch statistics"})
		return
	}

	dist, err := h.store.LevelDistribution(ctx)
	if err != nil {
		log.Printf("[admin] level distribution: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch statistics"})
		return
	}

	if results == nil {
		results = []models.QuizResult{}
	}
	if analytics == nil {
		analytics = []models.AnswerAnalytics{}
	}

	writeJSON(w, http.StatusOK, models.AdminStatsResponse{
		TotalQuizzes:      total,
		Results:           results,
		Analytics:         analytics,
		LevelDistribution: dist,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
