package dto

import "time"

// CreateQuizRequest represents the body of a quiz creation request.
// Omitted num_questions and time_limit fall back to 10 and 30.
// @Description Request body for creating a quiz from a chapter
type CreateQuizRequest struct {
	ChapterID    string `json:"chapter_id"`
	ChapterTitle string `json:"chapter_title,omitempty"`
	NumQuestions *int   `json:"num_questions,omitempty"`
	TimeLimit    *int   `json:"time_limit,omitempty"` // minutes
}

// CreateQuizResponse describes the stored quiz
type CreateQuizResponse struct {
	QuizID       string `json:"quiz_id"`
	Title        string `json:"title"`
	NumQuestions int    `json:"num_questions"`
	TimeLimit    int    `json:"time_limit"`
}

// QuizQuestionResponse is a question as shown to a student. It never carries
// the correct answer.
type QuizQuestionResponse struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Order   int      `json:"order"`
}

// QuizResponse represents a quiz ready to be taken
// @Description Quiz delivery view
type QuizResponse struct {
	ID        string                 `json:"id"`
	ChapterID string                 `json:"chapter_id"`
	Title     string                 `json:"title"`
	TimeLimit int                    `json:"time_limit"`
	Questions []QuizQuestionResponse `json:"questions"`
}

// SubmitQuizRequest represents a student's answers. Answers are keyed by
// question id; question_times holds seconds spent per question.
// @Description Request body for submitting a quiz attempt
type SubmitQuizRequest struct {
	QuizID        string             `json:"quiz_id"`
	Answers       map[string]string  `json:"answers"`
	QuestionTimes map[string]float64 `json:"question_times"`
}

// SubmitQuizResponse is the graded outcome of a submission
type SubmitQuizResponse struct {
	ResultID  string  `json:"result_id"`
	Score     float64 `json:"score"`
	Correct   int     `json:"correct"`
	Total     int     `json:"total"`
	TimeTaken float64 `json:"time_taken"`
}

// QuestionResultResponse compares one answer with the key
type QuestionResultResponse struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	CorrectAnswer string `json:"correct_answer"`
	StudentAnswer string `json:"student_answer,omitempty"`
	IsCorrect     bool   `json:"is_correct"`
}

// ResultResponse is a stored result with per-question detail
type ResultResponse struct {
	ID            string                   `json:"id"`
	QuizID        string                   `json:"quiz_id"`
	StudentID     string                   `json:"student_id"`
	Score         float64                  `json:"score"`
	Correct       int                      `json:"correct"`
	Total         int                      `json:"total"`
	TimeTaken     float64                  `json:"time_taken"`
	QuestionTimes map[string]float64       `json:"question_times"`
	Answers       map[string]string        `json:"answers"`
	CompletedAt   time.Time                `json:"completed_at"`
	Questions     []QuestionResultResponse `json:"questions"`
}

// ResultSummaryResponse is a result row in a student's history
type ResultSummaryResponse struct {
	ID            string             `json:"id"`
	QuizID        string             `json:"quiz_id"`
	Score         float64            `json:"score"`
	TimeTaken     float64            `json:"time_taken"`
	QuestionTimes map[string]float64 `json:"question_times,omitempty"`
	CompletedAt   time.Time          `json:"completed_at"`
}
