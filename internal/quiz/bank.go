package quiz

import "github.com/einstufung/backend/internal/models"

// BankSize is the fixed number of questions in an assessment.
const BankSize = 40

// Bank is the static, ordered question set: 40 questions in four contiguous
// CEFR tiers of 10 (ids 0-9 A1, 10-19 A2, 20-29 B1, 30-39 B2). It is built
// once at startup and shared read-only across requests.
type Bank struct {
	questions []models.Question
}

// NewBank returns the default German assessment bank.
func NewBank() *Bank {
	return &Bank{questions: germanQuestions}
}

// Get returns the question at index, or false when index is outside the bank.
func (b *Bank) Get(index int) (models.Question, bool) {
	if index < 0 || index >= len(b.questions) {
		return models.Question{}, false
	}
	return b.questions[index], true
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

var germanQuestions = []models.Question{
	// A1 (0-9)
	{ID: 0, Prompt: "Wie heißt du?", Options: []string{"Ich bin müde", "Ich heiße Maria", "Ich komme später"}, Answer: models.OptionB, Level: models.LevelA1},
	{ID: 1, Prompt: "Wo wohnst du?", Options: []string{"Ich wohne in Berlin", "Ich arbeite hier", "Ich spreche Deutsch"}, Answer: models.OptionA, Level: models.LevelA1},
	{ID: 2, Prompt: "Was ist das?", Options: []string{"Das ist ein Buch", "Das sind müde", "Das hat Hunger"}, Answer: models.OptionA, Level: models.LevelA1},
	{ID: 3, Prompt: "Wie alt bist du?", Options: []string{"Ich bin zwanzig Jahre alt", "Ich habe zwanzig", "Ich werde zwanzig"}, Answer: models.OptionA, Level: models.LevelA1},
	{ID: 4, Prompt: "Woher kommst du?", Options: []string{"Ich gehe nach Deutschland", "Ich komme aus Brasilien", "Ich fahre nach Hause"}, Answer: models.OptionB, Level: models.LevelA1},
	{ID: 5, Prompt: "Was trinkst du gern?", Options: []string{"Ich trinke gern Kaffee", "Ich esse gern Kaffee", "Ich schlafe gern Kaffee"}, Answer: models.OptionA, Level: models.LevelA1},
	{ID: 6, Prompt: "Wann stehst du auf?", Options: []string{"Ich stehe um 7 Uhr auf", "Ich bin um 7 Uhr", "Ich gehe um 7 Uhr"}, Answer: models.OptionA, Level: models.LevelA1},
	{ID: 7, Prompt: "Welche Farbe hat das Auto?", Options: []string{"Das Auto ist rot", "Das Auto hat rot", "Das Auto wird rot"}, Answer: models.OptionA, Level: models.LevelA1},
	{ID: 8, Prompt: "Wo ist der Schlüssel?", Options: []string{"Der Schlüssel liegt auf dem Tisch", "Der Schlüssel ist müde", "Der Schlüssel trinkt Wasser"}, Answer: models.OptionA, Level: models.LevelA1},
	{ID: 9, Prompt: "Was kostet das Brot?", Options: []string{"Das Brot kostet zwei Euro", "Das Brot ist zwei", "Das Brot hat zwei"}, Answer: models.OptionA, Level: models.LevelA1},

	// A2 (10-19)
	{ID: 10, Prompt: "Was machst du beruflich?", Options: []string{"Ich bin Lehrer", "Ich habe Hunger", "Ich gehe spazieren"}, Answer: models.OptionA, Level: models.LevelA2},
	{ID: 11, Prompt: "Wie ist das Wetter heute?", Options: []string{"Das Wetter ist schön und sonnig", "Das Wetter trinkt Kaffee", "Das Wetter arbeitet viel"}, Answer: models.OptionA, Level: models.LevelA2},
	{ID: 12, Prompt: "Was hast du gestern gemacht?", Options: []string{"Ich habe einen Film gesehen", "Ich sehe einen Film", "Ich werde einen Film sehen"}, Answer: models.OptionA, Level: models.LevelA2},
	{ID: 13, Prompt: "Warum lernst du Deutsch?", Options: []string{"Weil ich in Deutschland arbeiten möchte", "Dass ich in Deutschland arbeite", "Wenn ich in Deutschland arbeite"}, Answer: models.OptionA, Level: models.LevelA2},
	{ID: 14, Prompt: "Kannst du mir helfen?", Options: []string{"Ja, natürlich kann ich dir helfen", "Ja, ich helfe dir können", "Ja, du kannst mir helfen"}, Answer: models.OptionA, Level: models.LevelA2},
	{ID: 15, Prompt: "Wann fährt der nächste Zug?", Options: []string{"Der nächste Zug fährt um 15:30", "Der nächste Zug ist um 15:30", "Der nächste Zug hat um 15:30"}, Answer: models.OptionA, Level: models.LevelA2},
	{ID: 16, Prompt: "Was für Musik hörst du gern?", Options: []string{"Ich höre gern klassische Musik", "Ich esse gern klassische Musik", "Ich trinke gern klassische Musik"}, Answer: models.OptionA, Level: models.LevelA2},
	{ID: 17, Prompt: "Wie lange lernst du schon Deutsch?", Options: []string{"Ich lerne seit zwei Jahren Deutsch", "Ich lerne vor zwei Jahren Deutsch", "Ich lerne in zwei Jahren Deutsch"}, Answer: models.OptionA, Level: models.LevelA2},
	{ID: 18, Prompt: "Was würdest du gern machen?", Options: []string{"Ich würde gern reisen", "Ich will gern reisen", "Ich muss gern reisen"}, Answer: models.OptionA, Level: models.LevelA2},
	{ID: 19, Prompt: "Wo warst du letztes Wochenende?", Options: []string{"Ich war bei meinen Freunden", "Ich bin bei meinen Freunden", "Ich werde bei meinen Freunden"}, Answer: models.OptionA, Level: models.LevelA2},

	// B1 (20-29)
	{ID: 20, Prompt: "Wenn ich Zeit hätte, _____ ich mehr reisen.", Options: []string{"werde", "würde", "will"}, Answer: models.OptionB, Level: models.LevelB1},
	{ID: 21, Prompt: "Das ist der Mann, _____ Auto gestohlen wurde.", Options: []string{"dessen", "deren", "dem"}, Answer: models.OptionA, Level: models.LevelB1},
	{ID: 22, Prompt: "Obwohl es regnet, _____ wir spazieren.", Options: []string{"gehen", "gingen", "gegangen"}, Answer: models.OptionA, Level: models.LevelB1},
	{ID: 23, Prompt: "Er tut so, _____ er alles wüsste.", Options: []string{"als ob", "dass", "wenn"}, Answer: models.OptionA, Level: models.LevelB1},
	{ID: 24, Prompt: "Das Buch, _____ ich dir empfohlen habe, ist sehr interessant.", Options: []string{"das", "den", "dem"}, Answer: models.OptionA, Level: models.LevelB1},
	{ID: 25, Prompt: "_____ des schlechten Wetters sind wir gegangen.", Options: []string{"Wegen", "Trotz", "Während"}, Answer: models.OptionB, Level: models.LevelB1},
	{ID: 26, Prompt: "Sie arbeitet hart, _____ erfolgreich zu sein.", Options: []string{"um", "damit", "dass"}, Answer: models.OptionA, Level: models.LevelB1},
	{ID: 27, Prompt: "Nachdem er _____ hatte, ging er schlafen.", Options: []string{"gegessen", "essen", "isst"}, Answer: models.OptionA, Level: models.LevelB1},
	{ID: 28, Prompt: "Das Projekt _____ bis morgen fertig sein.", Options: []string{"muss", "musste", "müsste"}, Answer: models.OptionA, Level: models.LevelB1},
	{ID: 29, Prompt: "Je mehr er lernt, _____ besser wird er.", Options: []string{"desto", "als", "wie"}, Answer: models.OptionA, Level: models.LevelB1},

	// B2 (30-39)
	{ID: 30, Prompt: "Der Politiker, _____ Rede gestern gehalten wurde, ist sehr umstritten.", Options: []string{"dessen", "deren", "dem"}, Answer: models.OptionA, Level: models.LevelB2},
	{ID: 31, Prompt: "Hätte ich das gewusst, _____ ich anders gehandelt.", Options: []string{"wäre", "hätte", "würde"}, Answer: models.OptionB, Level: models.LevelB2},
	{ID: 32, Prompt: "Das Unternehmen sieht sich _____ Kritik ausgesetzt.", Options: []string{"schwerer", "schwere", "schweren"}, Answer: models.OptionA, Level: models.LevelB2},
	{ID: 33, Prompt: "_____ allem Anschein nach wird es regnen.", Options: []string{"Aller", "Allem", "Allen"}, Answer: models.OptionB, Level: models.LevelB2},
	{ID: 34, Prompt: "Die Angelegenheit _____ einer gründlichen Untersuchung.", Options: []string{"bedarf", "braucht", "benötigt"}, Answer: models.OptionA, Level: models.LevelB2},
	{ID: 35, Prompt: "_____ seiner Bemühungen konnte er das Ziel nicht erreichen.", Options: []string{"Trotz", "Ungeachtet", "Außer"}, Answer: models.OptionB, Level: models.LevelB2},
	{ID: 36, Prompt: "Das lässt sich _____ anders lösen.", Options: []string{"kaum", "kein", "nicht"}, Answer: models.OptionA, Level: models.LevelB2},
	{ID: 37, Prompt: "Die Verhandlungen _____ sich über Wochen hin.", Options: []string{"zogen", "zog", "gezogen"}, Answer: models.OptionA, Level: models.LevelB2},
	{ID: 38, Prompt: "_____ des Protestes wurde das Gesetz verabschiedet.", Options: []string{"Trotz", "Außer", "Ungeachtet"}, Answer: models.OptionC, Level: models.LevelB2},
	{ID: 39, Prompt: "Der Sachverhalt _____ einer eingehenden Prüfung.", Options: []string{"unterzieht", "unterziehen", "unterzogen"}, Answer: models.OptionA, Level: models.LevelB2},
}
