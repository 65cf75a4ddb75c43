package feedback

import (
	"fmt"

	"github.com/einstufung/backend/internal/models"
)

// contactLink is the fixed call-to-action embedded in every feedback message.
const contactLink = "https://wa.me/message/B7UCVV3XCPANK1"

// studyPlans holds the level-specific study recommendations interpolated into
// the feedback template.
var studyPlans = map[models.Level]string{
	models.LevelA1: `1. Reinforce articles (der/die/das, ein), negation (nicht, kein), the present tense of sein and haben, S-V-O word order, yes/no questions and W-questions.
2. Practice basic vocabulary in everyday contexts (greetings, introductions).
3. Listen to simple dialogues, shadow basic sentences, and memorize 20 new words per week.`,

	models.LevelA2: `1. Master the difference between Perfekt and Präteritum in everyday narratives.
2. Work on accusative vs. dative case, Perfekt with haben/sein + Partizip II, modal verbs, conjunctions (und, aber, weil, dass) and the imperative.
3. Deepen your use of connectors (zuerst, dann, danach) and prepositions of place and time in complex sentences.
4. Watch children's series in German, role-play everyday situations (shopping, making appointments), build verb mind maps and learn 10 expressions a day.`,

	models.LevelB1: `1. Work on Konjunktiv II for hypotheses and polite requests.
2. Practice subordinate clauses with "weil", "obwohl" and "als ob".
3. Review relative pronouns, the Präteritum of sein/haben/gehen and adjective declension.
4. Listen to "Slow German" podcasts, record yourself describing your day, and note down and use 5 collocations a day.`,

	models.LevelB2: `1. Apply the passive voice and Modalpassiv, Partizipialkonstruktionen, the genitive (wegen, trotz, während), correlative conjunctions and stylistic inversions.
2. Expand your repertoire with literary or technical texts, take part in debates or 5-minute mini-presentations, and learn 10 synonyms a week.`,
}

// Template renders the deterministic feedback document. It is always fully
// formed before any external enhancement is attempted and serves as the
// canonical fallback.
func Template(score int, level models.Level) string {
	return fmt.Sprintf(`You answered %d out of 40 correctly and your estimated level is **%s**. Congratulations on your result!

To consolidate what you already know and finally unlock your spoken German, here are your next study steps for level **%s**:

%s

Want to go further with complete material, a clear schedule and daily guidance for your learning? Reach out on WhatsApp and secure a special offer for the complete German course:
%s

—
I'm waiting for you there to help you reach fluency with an accelerated method and personal guidance! 🎯🇩🇪`,
		score, level, level, studyPlans[level], contactLink)
}
