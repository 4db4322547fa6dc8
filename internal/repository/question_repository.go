package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"quiz-maker/internal/domain"
	"quiz-maker/internal/repository/models"
	"quiz-maker/internal/util"
)

const questionColumns = `id "id", chapter_id "chapter_id", question_text "question_text", options "options",
	correct_answer "correct_answer", difficulty "difficulty", created_at "created_at"`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.
type QuestionDatabaseAdapter struct {
	db DBTX
}

func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// CreateQuestions inserts the questions one by one, assigning ids and
// creation times to those that lack them.
func (a *QuestionDatabaseAdapter) CreateQuestions(ctx context.Context, questions []*domain.Question) error {
	if len(questions) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`INSERT INTO questions (id, chapter_id, question_text, options, correct_answer, difficulty, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)

	now := time.Now()
	for _, q := range questions {
		if q.ID == "" {
			q.ID = util.NewULID()
		}
		if q.CreatedAt.IsZero() {
			q.CreatedAt = now
		}
		m := fromDomainQuestion(q)
		if _, err := exec.ExecContext(ctx, query,
			m.ID, m.ChapterID, m.Text, m.Options, m.CorrectAnswer, m.Difficulty, m.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to create question for chapter %s: %w", q.ChapterID, err)
		}
	}
	return nil
}

func (a *QuestionDatabaseAdapter) ListQuestionsByChapter(ctx context.Context, chapterID string) ([]domain.Question, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE chapter_id = ? ORDER BY created_at, id`
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), chapterID); err != nil {
		return nil, fmt.Errorf("failed to list questions of chapter %s: %w", chapterID, err)
	}

	questions := make([]domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

func toDomainQuestion(m *models.Question) domain.Question {
	options := make([]string, len(m.Options))
	copy(options, m.Options)
	return domain.Question{
		ID:            m.ID,
		ChapterID:     m.ChapterID,
		Text:          m.Text,
		Options:       options,
		CorrectAnswer: m.CorrectAnswer,
		Difficulty:    domain.ParseDifficulty(m.Difficulty),
		CreatedAt:     m.CreatedAt,
	}
}

func fromDomainQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:            q.ID,
		ChapterID:     q.ChapterID,
		Text:          q.Text,
		Options:       models.StringSlice(q.Options),
		CorrectAnswer: q.CorrectAnswer,
		Difficulty:    string(q.Difficulty),
		CreatedAt:     q.CreatedAt,
	}
}
