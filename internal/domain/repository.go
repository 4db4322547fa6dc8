package domain

import "context"

// TransactionManager runs fn inside one database transaction. Repositories
// called with the ctx passed to fn join that transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TextbookRepository persists textbooks and their chapters.
type TextbookRepository interface {
	CreateTextbook(ctx context.Context, textbook *Textbook) error
	ListTextbooks(ctx context.Context) ([]*Textbook, error)
	GetTextbookByID(ctx context.Context, id string) (*Textbook, error)
	CreateChapter(ctx context.Context, chapter *Chapter) error
	GetChapterByID(ctx context.Context, id string) (*Chapter, error)
	// ListChapters returns chapters ordered by number, with QuestionCount filled.
	ListChapters(ctx context.Context, textbookID string) ([]*Chapter, error)
}

// QuestionRepository persists synthesized questions.
type QuestionRepository interface {
	CreateQuestions(ctx context.Context, questions []*Question) error
	// ListQuestionsByChapter returns the chapter's questions in creation order.
	ListQuestionsByChapter(ctx context.Context, chapterID string) ([]Question, error)
}

// QuizRepository persists quizzes together with their ordered questions.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	// GetQuizByID returns the quiz with questions sorted by order, or nil.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
}

// StudentRepository persists students.
type StudentRepository interface {
	CreateStudent(ctx context.Context, student *Student) error
	GetStudentByID(ctx context.Context, id string) (*Student, error)
	GetStudentByEmail(ctx context.Context, email string) (*Student, error)
}

// ResultRepository stores results. There is no update path.
type ResultRepository interface {
	CreateResult(ctx context.Context, result *Result) error
	GetResultByID(ctx context.Context, id string) (*Result, error)
	ListResultsByStudent(ctx context.Context, studentID string) ([]*Result, error)
	ListResultsByQuiz(ctx context.Context, quizID string) ([]*Result, error)
}
