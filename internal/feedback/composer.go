package feedback

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/einstufung/backend/internal/models"
)

// rephraseTimeout bounds the external call so a slow collaborator can never
// hold a feedback request indefinitely. Expiry falls back like any failure.
const rephraseTimeout = 20 * time.Second

// Composer builds feedback in two stages: a deterministic template, then a
// best-effort rephrase through the external collaborator. Stage two failing —
// for any reason — leaves stage one's text in place.
type Composer struct {
	rephraser Rephraser
}

func NewComposer(rephraser Rephraser) *Composer {
	return &Composer{rephraser: rephraser}
}

// Compose never fails: the worst case is the unmodified template.
func (c *Composer) Compose(ctx context.Context, score int, level models.Level) string {
	text := Template(score, level)

	if c.rephraser == nil {
		return text
	}

	ctx, cancel := context.WithTimeout(ctx, rephraseTimeout)
	defer cancel()

	rephrased, err := c.rephraser.Rephrase(ctx, text)
	if err != nil {
		log.Printf("WARN: feedback rephrase failed, using template: %v", err)
		return text
	}
	if strings.TrimSpace(rephrased) == "" {
		return text
	}
	return rephrased
}
