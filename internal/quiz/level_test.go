package quiz

import (
	"testing"

	"github.com/einstufung/backend/internal/models"
)

func TestClassifyLevel_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  models.Level
	}{
		{0, models.LevelA1},
		{10, models.LevelA1},
		{11, models.LevelA2},
		{20, models.LevelA2},
		{21, models.LevelB1},
		{30, models.LevelB1},
		{31, models.LevelB2},
		{40, models.LevelB2},
	}

	for _, tt := range tests {
		got := ClassifyLevel(tt.score)
		if got != tt.want {
			t.Errorf("ClassifyLevel(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestClassifyLevel_Monotonic(t *testing.T) {
	order := map[models.Level]int{
		models.LevelA1: 0,
		models.LevelA2: 1,
		models.LevelB1: 2,
		models.LevelB2: 3,
	}

	prev := ClassifyLevel(0)
	for score := 1; score <= 40; score++ {
		got := ClassifyLevel(score)
		if order[got] < order[prev] {
			t.Fatalf("ClassifyLevel(%d) = %s is below ClassifyLevel(%d) = %s", score, got, score-1, prev)
		}
		prev = got
	}
}

func TestClassifyLevel_Clamps(t *testing.T) {
	if got := ClassifyLevel(-5); got != models.LevelA1 {
		t.Errorf("ClassifyLevel(-5) = %s, want A1", got)
	}
	if got := ClassifyLevel(100); got != models.LevelB2 {
		t.Errorf("ClassifyLevel(100) = %s, want B2", got)
	}
}
