package models

// ── Admin Types ───────────────────────────────────────

// AdminStatsResponse is the reporting view over persisted analytics and
// results: recent slices plus aggregate counts.
type AdminStatsResponse struct {
	TotalQuizzes      int               `json:"totalQuizzes"`
	Results           []QuizResult      `json:"results"`
	Analytics         []AnswerAnalytics `json:"analytics"`
	LevelDistribution LevelDistribution `json:"levelDistribution"`
}

type LevelDistribution struct {
	A1 int `json:"A1"`
	A2 int `json:"A2"`
	B1 int `json:"B1"`
	B2 int `json:"B2"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}
