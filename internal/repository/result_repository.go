package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"quiz-maker/internal/domain"
	"quiz-maker/internal/repository/models"
	"quiz-maker/internal/util"
)

const resultColumns = `id "id", student_id "student_id", quiz_id "quiz_id", answers "answers", question_times "question_times",
	score "score", correct_count "correct_count", total_count "total_count", time_taken "time_taken", completed_at "completed_at"`

// ResultDatabaseAdapter implements domain.ResultRepository using sqlx.
type ResultDatabaseAdapter struct {
	db DBTX
}

func NewResultDatabaseAdapter(db *sqlx.DB) domain.ResultRepository {
	return &ResultDatabaseAdapter{db: db}
}

func (a *ResultDatabaseAdapter) CreateResult(ctx context.Context, result *domain.Result) error {
	if result.ID == "" {
		result.ID = util.NewULID()
	}
	m := fromDomainResult(result)

	exec := GetExecutor(ctx, a.db)
	query := `INSERT INTO quiz_results (id, student_id, quiz_id, answers, question_times, score, correct_count, total_count, time_taken, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := exec.ExecContext(ctx, exec.Rebind(query),
		m.ID, m.StudentID, m.QuizID, m.Answers, m.QuestionTimes,
		m.Score, m.CorrectCount, m.TotalCount, m.TimeTaken, m.CompletedAt,
	); err != nil {
		return fmt.Errorf("failed to create result for quiz %s: %w", result.QuizID, err)
	}
	return nil
}

func (a *ResultDatabaseAdapter) GetResultByID(ctx context.Context, id string) (*domain.Result, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.QuizResult
	query := `SELECT ` + resultColumns + ` FROM quiz_results WHERE id = ?`
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get result %s: %w", id, err)
	}
	return toDomainResult(&row), nil
}

func (a *ResultDatabaseAdapter) ListResultsByStudent(ctx context.Context, studentID string) ([]*domain.Result, error) {
	return a.list(ctx, `SELECT `+resultColumns+` FROM quiz_results WHERE student_id = ? ORDER BY completed_at DESC, id DESC`, studentID)
}

func (a *ResultDatabaseAdapter) ListResultsByQuiz(ctx context.Context, quizID string) ([]*domain.Result, error) {
	return a.list(ctx, `SELECT `+resultColumns+` FROM quiz_results WHERE quiz_id = ? ORDER BY completed_at, id`, quizID)
}

func (a *ResultDatabaseAdapter) list(ctx context.Context, query, arg string) ([]*domain.Result, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.QuizResult
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), arg); err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*domain.Result, 0, len(rows))
	for i := range rows {
		results = append(results, toDomainResult(&rows[i]))
	}
	return results, nil
}

func toDomainResult(m *models.QuizResult) *domain.Result {
	if m == nil {
		return nil
	}
	return &domain.Result{
		ID:            m.ID,
		StudentID:     m.StudentID,
		QuizID:        m.QuizID,
		Answers:       map[string]string(m.Answers),
		QuestionTimes: map[string]float64(m.QuestionTimes),
		Score:         m.Score,
		CorrectCount:  m.CorrectCount,
		TotalCount:    m.TotalCount,
		TimeTaken:     m.TimeTaken,
		CompletedAt:   m.CompletedAt,
	}
}

func fromDomainResult(r *domain.Result) *models.QuizResult {
	if r == nil {
		return nil
	}
	return &models.QuizResult{
		ID:            r.ID,
		StudentID:     r.StudentID,
		QuizID:        r.QuizID,
		Answers:       models.StringMap(r.Answers),
		QuestionTimes: models.FloatMap(r.QuestionTimes),
		Score:         r.Score,
		CorrectCount:  r.CorrectCount,
		TotalCount:    r.TotalCount,
		TimeTaken:     r.TimeTaken,
		CompletedAt:   r.CompletedAt,
	}
}
