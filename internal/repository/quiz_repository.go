package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"quiz-maker/internal/domain"
	"quiz-maker/internal/repository/models"
	"quiz-maker/internal/util"
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.
type QuizDatabaseAdapter struct {
	db DBTX
}

func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// CreateQuiz inserts the quiz row and one quiz_questions row per question.
// Callers wrap it in a transaction so a quiz is never stored half-linked.
func (a *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now()
	}

	exec := GetExecutor(ctx, a.db)
	query := `INSERT INTO quizzes (id, chapter_id, title, time_limit_minutes, created_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := exec.ExecContext(ctx, exec.Rebind(query),
		quiz.ID, quiz.ChapterID, quiz.Title, quiz.TimeLimitMinutes, quiz.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}

	linkQuery := exec.Rebind(`INSERT INTO quiz_questions (id, quiz_id, question_id, position) VALUES (?, ?, ?, ?)`)
	for i := range quiz.Questions {
		qq := &quiz.Questions[i]
		if qq.ID == "" {
			qq.ID = util.NewULID()
		}
		qq.QuizID = quiz.ID
		if _, err := exec.ExecContext(ctx, linkQuery, qq.ID, qq.QuizID, qq.Question.ID, qq.Order); err != nil {
			return fmt.Errorf("failed to link question %s to quiz %s: %w", qq.Question.ID, quiz.ID, err)
		}
	}
	return nil
}

func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var row models.Quiz
	query := `SELECT id "id", chapter_id "chapter_id", title "title", time_limit_minutes "time_limit_minutes", created_at "created_at"
	FROM quizzes WHERE id = ?`
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}

	var links []models.QuizQuestionRow
	linkQuery := `SELECT qq.id "link_id", qq.position "position",
		q.id "id", q.chapter_id "chapter_id", q.question_text "question_text", q.options "options",
		q.correct_answer "correct_answer", q.difficulty "difficulty", q.created_at "created_at"
	FROM quiz_questions qq JOIN questions q ON q.id = qq.question_id
	WHERE qq.quiz_id = ? ORDER BY qq.position`
	if err := exec.SelectContext(ctx, &links, exec.Rebind(linkQuery), id); err != nil {
		return nil, fmt.Errorf("failed to load questions of quiz %s: %w", id, err)
	}

	return toDomainQuiz(&row, links), nil
}

func toDomainQuiz(m *models.Quiz, links []models.QuizQuestionRow) *domain.Quiz {
	quiz := &domain.Quiz{
		ID:               m.ID,
		ChapterID:        m.ChapterID,
		Title:            m.Title,
		TimeLimitMinutes: m.TimeLimitMinutes,
		CreatedAt:        m.CreatedAt,
		Questions:        make([]domain.QuizQuestion, 0, len(links)),
	}
	for i := range links {
		quiz.Questions = append(quiz.Questions, domain.QuizQuestion{
			ID:       links[i].LinkID,
			QuizID:   m.ID,
			Order:    links[i].Position,
			Question: toDomainQuestion(&links[i].Question),
		})
	}
	return quiz
}
