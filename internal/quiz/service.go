package quiz

import (
	"context"
	"fmt"
	"log"

	"github.com/einstufung/backend/internal/models"
	"github.com/google/uuid"
)

// Recorder is the persistence collaborator for the scoring path. *Store is the
// production implementation; tests substitute an in-memory one.
type Recorder interface {
	SaveAnalytics(ctx context.Context, a models.AnswerAnalytics) (models.AnswerAnalytics, error)
	AnalyticsBySession(ctx context.Context, sessionID string) ([]models.AnswerAnalytics, error)
	SaveResult(ctx context.Context, r models.QuizResult) (models.QuizResult, error)
}

// Composer builds the feedback document for a finished attempt. It must not
// fail: implementations fall back to deterministic text internally.
type Composer interface {
	Compose(ctx context.Context, score int, level models.Level) string
}

// Service coordinates the quiz state machine. It holds no per-session state;
// all continuity between requests is reconstructed from persisted analytics
// keyed by session id, so the service is safe to replicate.
type Service struct {
	bank     *Bank
	store    Recorder
	composer Composer
}

func NewService(bank *Bank, store Recorder, composer Composer) *Service {
	return &Service{bank: bank, store: store, composer: composer}
}

// ResolveSession returns the client-supplied session id, or mints a fresh one
// when the client has none yet (the first request of an attempt).
func (s *Service) ResolveSession(provided string) string {
	if provided != "" {
		return provided
	}
	return uuid.NewString()
}

// Question looks up the bank entry at index.
func (s *Service) Question(index int) (models.Question, bool) {
	return s.bank.Get(index)
}

// RecordAnswer persists one analytics row. The client submits an answer
// together with the request for the next question, so the answer at index i
// always belongs to question i-1. The write is best-effort: a storage failure
// is logged and the quiz response proceeds without it.
func (s *Service) RecordAnswer(ctx context.Context, sessionID string, index int, selected models.Option) {
	prev, ok := s.bank.Get(index - 1)
	if !ok {
		return
	}

	isCorrect := 0
	if selected == prev.Answer {
		isCorrect = 1
	}

	record := models.AnswerAnalytics{
		SessionID:      sessionID,
		QuestionID:     prev.ID,
		SelectedOption: selected,
		CorrectOption:  prev.Answer,
		IsCorrect:      isCorrect,
		Level:          prev.Level,
	}

	if _, err := s.store.SaveAnalytics(ctx, record); err != nil {
		log.Printf("WARN: analytics write failed for session %s question %d: %v", sessionID, prev.ID, err)
	}
}

// Feedback runs the terminal phase: recompute the score from stored analytics
// (never trusting a client-supplied value), classify the level, compose the
// feedback text, and persist the result. A failed result write is logged but
// the feedback already composed is still returned.
func (s *Service) Feedback(ctx context.Context, sessionID, ipAddress string) (string, error) {
	analytics, err := s.store.AnalyticsBySession(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("aggregate session %s: %w", sessionID, err)
	}

	score := Score(analytics)
	level := ClassifyLevel(score)
	feedback := s.composer.Compose(ctx, score, level)

	result := models.QuizResult{
		SessionID: sessionID,
		Score:     score,
		Level:     level,
		Feedback:  feedback,
		Answers:   analytics,
		IPAddress: ipAddress,
	}
	if _, err := s.store.SaveResult(ctx, result); err != nil {
		log.Printf("WARN: result write failed for session %s: %v", sessionID, err)
	}

	return feedback, nil
}

// Score reduces a session's analytics records to its total-correct count.
func Score(records []models.AnswerAnalytics) int {
	total := 0
	for _, r := range records {
		if r.IsCorrect == 1 {
			total++
		}
	}
	return total
}
