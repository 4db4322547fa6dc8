package domain

import (
	"fmt"
	"time"
)

const (
	DefaultQuizQuestionCount = 10
	DefaultTimeLimitMinutes  = 30
)

// QuizQuestion is a question placed in a quiz at a 1-based position.
type QuizQuestion struct {
	ID       string
	QuizID   string
	Order    int
	Question Question
}

// Quiz is an ordered selection of questions from one chapter.
type Quiz struct {
	ID               string
	ChapterID        string
	Title            string
	TimeLimitMinutes int
	Questions        []QuizQuestion
	CreatedAt        time.Time
}

// QuizTitle is the title given to quizzes built for a chapter.
func QuizTitle(chapterTitle string) string {
	return fmt.Sprintf("Quiz for Chapter %s", chapterTitle)
}

// QuestionIDs returns the ids of the quiz questions in order.
func (q *Quiz) QuestionIDs() []string {
	ids := make([]string, len(q.Questions))
	for i, qq := range q.Questions {
		ids[i] = qq.Question.ID
	}
	return ids
}

// Assemble builds a quiz from the first requestedCount questions of pool,
// keeping pool order.
func Assemble(chapterID string, pool []Question, requestedCount, timeLimitMinutes int) (*Quiz, error) {
	if requestedCount <= 0 {
		return nil, NewInvalidRequestError(fmt.Sprintf("num_questions must be positive, got %d", requestedCount))
	}
	if timeLimitMinutes <= 0 {
		return nil, NewInvalidRequestError(fmt.Sprintf("time_limit must be positive, got %d", timeLimitMinutes))
	}
	if len(pool) == 0 {
		return nil, NewEmptyPoolError(chapterID)
	}

	k := min(requestedCount, len(pool))
	quiz := &Quiz{
		ChapterID:        chapterID,
		TimeLimitMinutes: timeLimitMinutes,
		Questions:        make([]QuizQuestion, 0, k),
		CreatedAt:        time.Now(),
	}
	for i, q := range pool[:k] {
		if q.ChapterID != "" && q.ChapterID != chapterID {
			return nil, NewInvalidRequestError(fmt.Sprintf("question %s belongs to chapter %s, not %s", q.ID, q.ChapterID, chapterID))
		}
		quiz.Questions = append(quiz.Questions, QuizQuestion{Order: i + 1, Question: q})
	}
	return quiz, nil
}
