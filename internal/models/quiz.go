package models

import "time"

type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
)

var ValidLevels = map[Level]bool{
	LevelA1: true,
	LevelA2: true,
	LevelB1: true,
	LevelB2: true,
}

type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
)

var ValidOptions = map[Option]bool{
	OptionA: true,
	OptionB: true,
	OptionC: true,
}

type Phase string

const (
	PhaseQuiz     Phase = "quiz"
	PhaseFeedback Phase = "feedback"
)

// ── Core Structs ───────────────────────────────────────

// Question is one entry of the static bank. Prompt and options are served to
// the client; the correct option never is.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Answer  Option   `json:"answer"`
	Level   Level    `json:"level"`
}

// AnswerAnalytics is one persisted fact about a single answered question.
// Rows are append-only and keyed (non-uniquely) by session_id.
type AnswerAnalytics struct {
	ID             int64     `json:"id"`
	SessionID      string    `json:"session_id"`
	QuestionID     int       `json:"question_id"`
	SelectedOption Option    `json:"selected_option"`
	CorrectOption  Option    `json:"correct_option"`
	IsCorrect      int       `json:"is_correct"`
	Level          Level     `json:"level"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// QuizResult is the persisted summary of a completed attempt, including a
// snapshot of the session's analytics at completion time.
type QuizResult struct {
	ID          int64             `json:"id"`
	SessionID   string            `json:"session_id"`
	Score       int               `json:"score"`
	Level       Level             `json:"level"`
	Feedback    string            `json:"feedback"`
	Answers     []AnswerAnalytics `json:"answers"`
	IPAddress   string            `json:"ip_address"`
	CompletedAt time.Time         `json:"completed_at"`
}

// ── Request Types ─────────────────────────────────────

// QuizRequest is the single request shape for both phases. Score may be sent
// by older clients but is never trusted; the server recomputes it from stored
// analytics.
type QuizRequest struct {
	Phase         Phase   `json:"phase"`
	QuestionIndex *int    `json:"questionIndex,omitempty"`
	Answer        *string `json:"answer,omitempty"`
	Score         *int    `json:"score,omitempty"`
	SessionID     string  `json:"sessionId,omitempty"`
}

// ── Response Types ────────────────────────────────────

type QuestionResponse struct {
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	SessionID string   `json:"sessionId"`
}

type FeedbackResponse struct {
	Feedback  string `json:"feedback"`
	SessionID string `json:"sessionId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
