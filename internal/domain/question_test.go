package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longSentence(c string) string {
	return strings.Repeat(c, 60)
}

func TestSynthesize_Empty(t *testing.T) {
	assert.Empty(t, Synthesize("", DefaultQuestionsPerChapter))
	assert.NotNil(t, Synthesize("", DefaultQuestionsPerChapter))
}

func TestSynthesize_StructuralGuarantees(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("Sentence " + longSentence("z") + ". ")
		b.WriteString("tiny. ")
	}

	for _, max := range []int{1, 3, 5, 20} {
		questions := Synthesize(b.String(), max)
		assert.LessOrEqual(t, len(questions), max)
		for _, q := range questions {
			require.Len(t, q.Options, 4)
			assert.Contains(t, q.Options, q.CorrectAnswer)
			assert.Equal(t, DifficultyMedium, q.Difficulty)
			assert.NoError(t, q.Validate())
		}
	}
}

func TestSynthesize_FiltersShortFragmentsAndKeepsOrder(t *testing.T) {
	first := "First " + longSentence("a")
	second := "Second " + longSentence("b")
	text := "Short one. " + first + ". " + strings.Repeat("c", 50) + ". " + second + "."

	questions := Synthesize(text, DefaultQuestionsPerChapter)

	require.Len(t, questions, 2)
	assert.Equal(t, "What is the main topic of this sentence: '"+first+"...'?", questions[0].Text)
	assert.Equal(t, "What is the main topic of this sentence: '"+second+"...'?", questions[1].Text)
}

func TestSynthesize_TruncatesExcerptTo100Characters(t *testing.T) {
	sentence := strings.Repeat("ü", 150)

	questions := Synthesize(sentence, 1)

	require.Len(t, questions, 1)
	assert.Equal(t, "What is the main topic of this sentence: '"+strings.Repeat("ü", 100)+"...'?", questions[0].Text)
}

func TestSynthesize_Cap(t *testing.T) {
	text := strings.Repeat(longSentence("q")+". ", 10)

	assert.Len(t, Synthesize(text, DefaultQuestionsPerChapter), 5)
	assert.Len(t, Synthesize(text, 2), 2)
	assert.Empty(t, Synthesize(text, 0))
	assert.Empty(t, Synthesize(text, -3))
}

func TestSynthesize_OptionsAreIndependentCopies(t *testing.T) {
	text := longSentence("a") + ". " + longSentence("b")
	questions := Synthesize(text, 2)
	require.Len(t, questions, 2)

	questions[0].Options[0] = "mutated"

	assert.Equal(t, "Topic A", questions[1].Options[0])
	assert.Equal(t, "Topic A", Synthesize(text, 1)[0].Options[0])
}

func TestSynthesize_Idempotent(t *testing.T) {
	text := longSentence("a") + ". " + longSentence("b") + ". short"
	assert.Equal(t, Synthesize(text, 5), Synthesize(text, 5))
}

func TestParseQuestionSheet(t *testing.T) {
	sheet := `
1. What is a goroutine?
a) A lightweight thread
b) A package
c) A compiler flag

2. Which keyword starts a goroutine?
a) go
b) defer
stray line
3. An orphan question without options
4. Last one
a)   select
`

	questions := ParseQuestionSheet(sheet)

	require.Len(t, questions, 3)
	assert.Equal(t, "What is a goroutine?", questions[0].Text)
	assert.Equal(t, []string{"A lightweight thread", "A package", "A compiler flag"}, questions[0].Options)
	assert.Equal(t, "A lightweight thread", questions[0].CorrectAnswer)
	assert.Equal(t, "go", questions[1].CorrectAnswer)
	assert.Equal(t, "Last one", questions[2].Text)
	assert.Equal(t, []string{"select"}, questions[2].Options)
	for _, q := range questions {
		assert.Equal(t, DifficultyMedium, q.Difficulty)
	}
}

func TestParseQuestionSheet_NoQuestions(t *testing.T) {
	assert.Empty(t, ParseQuestionSheet("a) option before any question\nplain prose"))
}

func TestParseDifficulty(t *testing.T) {
	assert.Equal(t, DifficultyEasy, ParseDifficulty("EASY"))
	assert.Equal(t, DifficultyHard, ParseDifficulty(" hard "))
	assert.Equal(t, DifficultyMedium, ParseDifficulty(""))
	assert.Equal(t, DifficultyMedium, ParseDifficulty("unknown"))
}

func TestQuestion_Validate(t *testing.T) {
	q := Question{Text: "t", Options: []string{"x", "y"}, CorrectAnswer: "z"}
	assert.ErrorIs(t, q.Validate(), ErrInvalidInput)

	q.CorrectAnswer = "y"
	assert.NoError(t, q.Validate())

	q.Options = nil
	assert.Error(t, q.Validate())
}
