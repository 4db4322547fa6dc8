package models

import "time"

// Quiz is a row of the quizzes table.
type Quiz struct {
	ID               string    `db:"id"`
	ChapterID        string    `db:"chapter_id"`
	Title            string    `db:"title"`
	TimeLimitMinutes int       `db:"time_limit_minutes"`
	CreatedAt        time.Time `db:"created_at"`
}

// QuizQuestion links a question to a quiz at a 1-based position.
type QuizQuestion struct {
	ID         string `db:"id"`
	QuizID     string `db:"quiz_id"`
	QuestionID string `db:"question_id"`
	Position   int    `db:"position"`
}

// QuizQuestionRow is a quiz_questions row joined with its question.
type QuizQuestionRow struct {
	LinkID   string `db:"link_id"`
	Position int    `db:"position"`
	Question
}

// Student is a row of the students table.
type Student struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// QuizResult is a row of the quiz_results table.
type QuizResult struct {
	ID            string    `db:"id"`
	StudentID     string    `db:"student_id"`
	QuizID        string    `db:"quiz_id"`
	Answers       StringMap `db:"answers"`
	QuestionTimes FloatMap  `db:"question_times"`
	Score         float64   `db:"score"`
	CorrectCount  int       `db:"correct_count"`
	TotalCount    int       `db:"total_count"`
	TimeTaken     float64   `db:"time_taken"`
	CompletedAt   time.Time `db:"completed_at"`
}
