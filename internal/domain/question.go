package domain

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is the declared difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a stored value back to a Difficulty, defaulting to medium.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

const (
	// DefaultQuestionsPerChapter caps Synthesize when the caller has no preference.
	DefaultQuestionsPerChapter = 5

	minSentenceLength = 50
	stemExcerptLength = 100

	placeholderAnswer = "Topic A"
)

var placeholderOptions = [...]string{"Topic A", "Topic B", "Topic C", "Topic D"}

// Question is a multiple-choice item derived from one chapter.
type Question struct {
	ID            string
	ChapterID     string
	Text          string
	Options       []string
	CorrectAnswer string
	Difficulty    Difficulty
	CreatedAt     time.Time
}

// Validate checks the structural guarantees every stored question has.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) == 0 {
		return NewInvalidInputError("question needs at least one option")
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return nil
		}
	}
	return NewInvalidInputError(fmt.Sprintf("correct answer %q is not one of the options", q.CorrectAnswer))
}

// Synthesize derives up to maxQuestions placeholder questions from chapter text.
//
// Sentences are the "."-separated fragments longer than 50 characters once
// trimmed. Each one becomes a four-option question whose answer is always
// "Topic A"; only the shape of the output is meaningful.
func Synthesize(chapterText string, maxQuestions int) []Question {
	if maxQuestions <= 0 {
		return []Question{}
	}

	questions := make([]Question, 0, maxQuestions)
	for _, fragment := range strings.Split(chapterText, ".") {
		sentence := strings.TrimSpace(fragment)
		if runeLen(sentence) <= minSentenceLength {
			continue
		}
		questions = append(questions, Question{
			Text:          fmt.Sprintf("What is the main topic of this sentence: '%s...'?", runePrefix(sentence, stemExcerptLength)),
			Options:       append([]string(nil), placeholderOptions[:]...),
			CorrectAnswer: placeholderAnswer,
			Difficulty:    DifficultyMedium,
		})
		if len(questions) == maxQuestions {
			break
		}
	}
	return questions
}

var (
	sheetQuestionPrefixes = []string{"1.", "2.", "3.", "4.", "5."}
	sheetOptionPrefixes   = []string{"a)", "b)", "c)", "d)"}
)

// ParseQuestionSheet reads a prewritten question sheet:
//
//	1. What is a goroutine?
//	a) A lightweight thread
//	b) A package
//
// The first option of each question is taken as the correct answer.
// Questions without options are dropped.
func ParseQuestionSheet(text string) []Question {
	var (
		questions []Question
		current   *Question
	)
	flush := func() {
		if current == nil || len(current.Options) == 0 {
			return
		}
		current.CorrectAnswer = current.Options[0]
		questions = append(questions, *current)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case hasAnyPrefix(line, sheetQuestionPrefixes):
			flush()
			current = &Question{
				Text:       strings.TrimSpace(line[2:]),
				Difficulty: DifficultyMedium,
			}
		case hasAnyPrefix(line, sheetOptionPrefixes):
			if current != nil {
				current.Options = append(current.Options, strings.TrimSpace(line[2:]))
			}
		}
	}
	flush()

	if questions == nil {
		return []Question{}
	}
	return questions
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
