package domain

import (
	"strings"
	"time"
)

// Student is a registered quiz taker.
type Student struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// NewStudent creates a new Student with trimmed name and email.
func NewStudent(name, email string) *Student {
	return &Student{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		CreatedAt: time.Now(),
	}
}

// Validate validates the student
func (s *Student) Validate() error {
	if s.Name == "" || s.Email == "" {
		return NewInvalidInputError("Name and email are required")
	}
	if !strings.Contains(s.Email, "@") || !strings.Contains(s.Email, ".") {
		return NewInvalidInputError("Invalid email format")
	}
	return nil
}

// Result is the graded outcome of one submission. It is never re-scored.
type Result struct {
	ID            string
	StudentID     string
	QuizID        string
	Answers       map[string]string
	QuestionTimes map[string]float64
	Score         float64
	CorrectCount  int
	TotalCount    int
	TimeTaken     float64 // seconds
	CompletedAt   time.Time
}

// Grade scores a submission against the quiz's answer keys.
//
// Answers are keyed by question id and must match the correct answer exactly.
// TimeTaken sums every question_times entry, including ids outside the quiz.
func Grade(quiz *Quiz, answers map[string]string, questionTimes map[string]float64) (*Result, error) {
	if quiz == nil || len(quiz.Questions) == 0 {
		id := ""
		if quiz != nil {
			id = quiz.ID
		}
		return nil, NewDivisionUndefinedError(id)
	}

	correct := 0
	for _, qq := range quiz.Questions {
		if answer, ok := answers[qq.Question.ID]; ok && answer == qq.Question.CorrectAnswer {
			correct++
		}
	}

	var timeTaken float64
	for _, secs := range questionTimes {
		timeTaken += secs
	}

	total := len(quiz.Questions)
	return &Result{
		QuizID:        quiz.ID,
		Answers:       copyAnswers(answers),
		QuestionTimes: copyTimes(questionTimes),
		Score:         100 * float64(correct) / float64(total),
		CorrectCount:  correct,
		TotalCount:    total,
		TimeTaken:     timeTaken,
		CompletedAt:   time.Now(),
	}, nil
}

func copyAnswers(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyTimes(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
