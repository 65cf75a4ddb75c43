package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/einstufung/backend/internal/models"
)

// Store persists quiz analytics and results. Both collections are append-only:
// rows are inserted once and never updated or deleted by this service.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Answer Analytics ────────────────────────────────────

func (s *Store) SaveAnalytics(ctx context.Context, a models.AnswerAnalytics) (models.AnswerAnalytics, error) {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO quiz_analytics (session_id, question_id, selected_option, correct_option, is_correct, level)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, answered_at`,
		a.SessionID, a.QuestionID, a.SelectedOption, a.CorrectOption, a.IsCorrect, a.Level,
	).Scan(&a.ID, &a.AnsweredAt)
	if err != nil {
		return models.AnswerAnalytics{}, fmt.Errorf("save analytics: %w", err)
	}
	return a, nil
}

func (s *Store) AnalyticsBySession(ctx context.Context, sessionID string) ([]models.AnswerAnalytics, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, question_id, selected_option, correct_option, is_correct, level, answered_at
		 FROM quiz_analytics
		 WHERE session_id = $1
		 ORDER BY answered_at ASC, id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics by session: %w", err)
	}
	defer rows.Close()

	return scanAnalytics(rows)
}

// RecentAnalytics returns the newest analytics rows across all sessions,
// capped at limit. Used only by the admin view.
func (s *Store) RecentAnalytics(ctx context.Context, limit int) ([]models.AnswerAnalytics, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, question_id, selected_option, correct_option, is_correct, level, answered_at
		 FROM quiz_analytics
		 ORDER BY answered_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent analytics: %w", err)
	}
	defer rows.Close()

	return scanAnalytics(rows)
}

func scanAnalytics(rows *sql.Rows) ([]models.AnswerAnalytics, error) {
	var records []models.AnswerAnalytics
	for rows.Next() {
		var a models.AnswerAnalytics
		if err := rows.Scan(&a.ID, &a.SessionID, &a.QuestionID, &a.SelectedOption,
			&a.CorrectOption, &a.IsCorrect, &a.Level, &a.AnsweredAt); err != nil {
			return nil, fmt.Errorf("scan analytics: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// ── Quiz Results ────────────────────────────────────────

func (s *Store) SaveResult(ctx context.Context, r models.QuizResult) (models.QuizResult, error) {
	answers, err := json.Marshal(r.Answers)
	if err != nil {
		return models.QuizResult{}, fmt.Errorf("marshal answers: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`INSERT INTO quiz_results (session_id, score, level, feedback, answers, ip_address)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, completed_at`,
		r.SessionID, r.Score, r.Level, r.Feedback, answers, r.IPAddress,
	).Scan(&r.ID, &r.CompletedAt)
	if err != nil {
		return models.QuizResult{}, fmt.Errorf("save result: %w", err)
	}
	return r, nil
}

// RecentResults returns the newest results across all sessions, capped at
// limit. Used only by the admin view.
func (s *Store) RecentResults(ctx context.Context, limit int) ([]models.QuizResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, score, level, feedback, answers, COALESCE(ip_address, 'unknown'), completed_at
		 FROM quiz_results
		 ORDER BY completed_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent results: %w", err)
	}
	defer rows.Close()

	var results []models.QuizResult
	for rows.Next() {
		var r models.QuizResult
		var answers []byte
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Score, &r.Level, &r.Feedback,
			&answers, &r.IPAddress, &r.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if len(answers) > 0 {
			if err := json.Unmarshal(answers, &r.Answers); err != nil {
				return nil, fmt.Errorf("unmarshal answers: %w", err)
			}
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *Store) CountResults(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quiz_results`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return count, nil
}

func (s *Store) LevelDistribution(ctx context.Context) (models.LevelDistribution, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT level, COUNT(*) FROM quiz_results GROUP BY level`)
	if err != nil {
		return models.LevelDistribution{}, fmt.Errorf("level distribution: %w", err)
	}
	defer rows.Close()

	var dist models.LevelDistribution
	for rows.Next() {
		var level models.Level
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return models.LevelDistribution{}, fmt.Errorf("scan distribution: %w", err)
		}
		switch level {
		case models.LevelA1:
			dist.A1 = count
		case models.LevelA2:
			dist.A2 = count
		case models.LevelB1:
			dist.B1 = count
		case models.LevelB2:
			dist.B2 = count
		}
	}
	return dist, rows.Err()
}
