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

const textbookColumns = `id "id", title "title", author "author", file_path "file_path", created_at "created_at"`

// TextbookDatabaseAdapter implements domain.TextbookRepository using sqlx.
type TextbookDatabaseAdapter struct {
	db DBTX
}

func NewTextbookDatabaseAdapter(db *sqlx.DB) domain.TextbookRepository {
	return &TextbookDatabaseAdapter{db: db}
}

func (a *TextbookDatabaseAdapter) CreateTextbook(ctx context.Context, textbook *domain.Textbook) error {
	if textbook.ID == "" {
		textbook.ID = util.NewULID()
	}
	if textbook.CreatedAt.IsZero() {
		textbook.CreatedAt = time.Now()
	}
	m := fromDomainTextbook(textbook)

	exec := GetExecutor(ctx, a.db)
	query := `INSERT INTO textbooks (id, title, author, file_path, created_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := exec.ExecContext(ctx, exec.Rebind(query), m.ID, m.Title, m.Author, m.FilePath, m.CreatedAt); err != nil {
		return fmt.Errorf("failed to create textbook: %w", err)
	}
	return nil
}

func (a *TextbookDatabaseAdapter) ListTextbooks(ctx context.Context) ([]*domain.Textbook, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.Textbook
	query := `SELECT t.id "id", t.title "title", t.author "author", t.file_path "file_path", t.created_at "created_at",
		(SELECT COUNT(*) FROM chapters c WHERE c.textbook_id = t.id) "chapter_count"
	FROM textbooks t ORDER BY t.created_at DESC, t.id DESC`
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query)); err != nil {
		return nil, fmt.Errorf("failed to list textbooks: %w", err)
	}

	textbooks := make([]*domain.Textbook, 0, len(rows))
	for i := range rows {
		textbooks = append(textbooks, toDomainTextbook(&rows[i]))
	}
	return textbooks, nil
}

func (a *TextbookDatabaseAdapter) GetTextbookByID(ctx context.Context, id string) (*domain.Textbook, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.Textbook
	query := `SELECT ` + textbookColumns + ` FROM textbooks WHERE id = ?`
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get textbook %s: %w", id, err)
	}
	return toDomainTextbook(&row), nil
}

func (a *TextbookDatabaseAdapter) CreateChapter(ctx context.Context, chapter *domain.Chapter) error {
	if chapter.ID == "" {
		chapter.ID = util.NewULID()
	}
	m := fromDomainChapter(chapter)

	exec := GetExecutor(ctx, a.db)
	query := `INSERT INTO chapters (id, textbook_id, title, chapter_number, content) VALUES (?, ?, ?, ?, ?)`
	if _, err := exec.ExecContext(ctx, exec.Rebind(query), m.ID, m.TextbookID, m.Title, m.Number, m.Content); err != nil {
		return fmt.Errorf("failed to create chapter %q: %w", chapter.Title, err)
	}
	return nil
}

func (a *TextbookDatabaseAdapter) GetChapterByID(ctx context.Context, id string) (*domain.Chapter, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.Chapter
	query := `SELECT c.id "id", c.textbook_id "textbook_id", c.title "title", c.chapter_number "chapter_number", c.content "content",
		(SELECT COUNT(*) FROM questions q WHERE q.chapter_id = c.id) "question_count"
	FROM chapters c WHERE c.id = ?`
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chapter %s: %w", id, err)
	}
	return toDomainChapter(&row), nil
}

// ListChapters omits chapter text.
func (a *TextbookDatabaseAdapter) ListChapters(ctx context.Context, textbookID string) ([]*domain.Chapter, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.Chapter
	query := `SELECT c.id "id", c.textbook_id "textbook_id", c.title "title", c.chapter_number "chapter_number",
		(SELECT COUNT(*) FROM questions q WHERE q.chapter_id = c.id) "question_count"
	FROM chapters c WHERE c.textbook_id = ? ORDER BY c.chapter_number`
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), textbookID); err != nil {
		return nil, fmt.Errorf("failed to list chapters of textbook %s: %w", textbookID, err)
	}

	chapters := make([]*domain.Chapter, 0, len(rows))
	for i := range rows {
		chapters = append(chapters, toDomainChapter(&rows[i]))
	}
	return chapters, nil
}

func toDomainTextbook(m *models.Textbook) *domain.Textbook {
	if m == nil {
		return nil
	}
	return &domain.Textbook{
		ID:        m.ID,
		Title:     m.Title,
		Author:    util.NullStringToString(m.Author),
		FilePath:  m.FilePath,
		CreatedAt: m.CreatedAt,

		ChapterCount: m.ChapterCount,
	}
}

func fromDomainTextbook(t *domain.Textbook) *models.Textbook {
	if t == nil {
		return nil
	}
	return &models.Textbook{
		ID:        t.ID,
		Title:     t.Title,
		Author:    util.StringToNullString(t.Author),
		FilePath:  t.FilePath,
		CreatedAt: t.CreatedAt,
	}
}

func toDomainChapter(m *models.Chapter) *domain.Chapter {
	if m == nil {
		return nil
	}
	return &domain.Chapter{
		ID:            m.ID,
		TextbookID:    m.TextbookID,
		Title:         m.Title,
		Number:        m.Number,
		Text:          m.Content,
		QuestionCount: m.QuestionCount,
	}
}

func fromDomainChapter(c *domain.Chapter) *models.Chapter {
	if c == nil {
		return nil
	}
	return &models.Chapter{
		ID:         c.ID,
		TextbookID: c.TextbookID,
		Title:      c.Title,
		Number:     c.Number,
		Content:    c.Text,
	}
}
