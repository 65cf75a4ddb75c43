package quiz

import "github.com/einstufung/backend/internal/models"

// ClassifyLevel maps a total-correct count to a CEFR level. Thresholds are
// inclusive lower bounds checked from highest to lowest; anything below 11
// lands on A1. Scores outside 0..40 are clamped first.
func ClassifyLevel(score int) models.Level {
	if score < 0 {
		score = 0
	}
	if score > BankSize {
		score = BankSize
	}

	switch {
	case score >= 31:
		return models.LevelB2
	case score >= 21:
		return models.LevelB1
	case score >= 11:
		return models.LevelA2
	default:
		return models.LevelA1
	}
}
