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

const studentColumns = `id "id", name "name", email "email", created_at "created_at"`

// StudentDatabaseAdapter implements domain.StudentRepository using sqlx.
type StudentDatabaseAdapter struct {
	db DBTX
}

func NewStudentDatabaseAdapter(db *sqlx.DB) domain.StudentRepository {
	return &StudentDatabaseAdapter{db: db}
}

func (a *StudentDatabaseAdapter) CreateStudent(ctx context.Context, student *domain.Student) error {
	if student.ID == "" {
		student.ID = util.NewULID()
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now()
	}

	exec := GetExecutor(ctx, a.db)
	query := `INSERT INTO students (id, name, email, created_at) VALUES (?, ?, ?, ?)`
	if _, err := exec.ExecContext(ctx, exec.Rebind(query), student.ID, student.Name, student.Email, student.CreatedAt); err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (a *StudentDatabaseAdapter) GetStudentByID(ctx context.Context, id string) (*domain.Student, error) {
	return a.getOne(ctx, `SELECT `+studentColumns+` FROM students WHERE id = ?`, id)
}

func (a *StudentDatabaseAdapter) GetStudentByEmail(ctx context.Context, email string) (*domain.Student, error) {
	return a.getOne(ctx, `SELECT `+studentColumns+` FROM students WHERE email = ?`, email)
}

func (a *StudentDatabaseAdapter) getOne(ctx context.Context, query string, arg string) (*domain.Student, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.Student
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return toDomainStudent(&row), nil
}

func toDomainStudent(m *models.Student) *domain.Student {
	if m == nil {
		return nil
	}
	return &domain.Student{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}
