package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-maker/internal/domain"
	"quiz-maker/internal/repository/models"
)

// setupTestDB creates a sqlx.DB backed by sqlmock. The "sqlmock" driver has
// no registered bind type, so Rebind leaves ? placeholders untouched.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestCreateTextbook(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTextbookDatabaseAdapter(db)

	textbook := domain.NewTextbook("Go in Practice", "", "uploads/go.pdf")

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO textbooks (id, title, author, file_path, created_at) VALUES (?, ?, ?, ?, ?)`)).
		WithArgs(sqlmock.AnyArg(), "Go in Practice", nil, "uploads/go.pdf", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateTextbook(context.Background(), textbook)

	assert.NoError(t, err)
	assert.NotEmpty(t, textbook.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTextbook_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTextbookDatabaseAdapter(db)

	mock.ExpectExec(`INSERT INTO textbooks`).WillReturnError(errors.New("disk full"))

	err := repo.CreateTextbook(context.Background(), domain.NewTextbook("t", "a", "p"))

	assert.ErrorContains(t, err, "failed to create textbook")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTextbooks(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTextbookDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "author", "file_path", "created_at", "chapter_count"}).
		AddRow("tb2", "Second", "Ada", "uploads/b.pdf", now, 3).
		AddRow("tb1", "First", nil, "uploads/a.txt", now.Add(-time.Hour), 0)
	mock.ExpectQuery(`FROM textbooks t ORDER BY t.created_at DESC`).WillReturnRows(rows)

	textbooks, err := repo.ListTextbooks(context.Background())

	require.NoError(t, err)
	require.Len(t, textbooks, 2)
	assert.Equal(t, "tb2", textbooks[0].ID)
	assert.Equal(t, "Ada", textbooks[0].Author)
	assert.Equal(t, 3, textbooks[0].ChapterCount)
	assert.Equal(t, "", textbooks[1].Author)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTextbookByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTextbookDatabaseAdapter(db)

	mock.ExpectQuery(`FROM textbooks WHERE id = \?`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	textbook, err := repo.GetTextbookByID(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, textbook)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateChapter(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTextbookDatabaseAdapter(db)

	chapter := &domain.Chapter{TextbookID: "tb1", Title: "Chapter 1", Number: 1, Text: "body"}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO chapters (id, textbook_id, title, chapter_number, content) VALUES (?, ?, ?, ?, ?)`)).
		WithArgs(sqlmock.AnyArg(), "tb1", "Chapter 1", 1, "body").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateChapter(context.Background(), chapter))
	assert.NotEmpty(t, chapter.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetChapterByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTextbookDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"id", "textbook_id", "title", "chapter_number", "content", "question_count"}).
		AddRow("ch1", "tb1", "Chapter 1", 1, "body text", 5)
	mock.ExpectQuery(`FROM chapters c WHERE c.id = \?`).WithArgs("ch1").WillReturnRows(rows)

	chapter, err := repo.GetChapterByID(context.Background(), "ch1")

	require.NoError(t, err)
	assert.Equal(t, &domain.Chapter{ID: "ch1", TextbookID: "tb1", Title: "Chapter 1", Number: 1, Text: "body text", QuestionCount: 5}, chapter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListChapters(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTextbookDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"id", "textbook_id", "title", "chapter_number", "question_count"}).
		AddRow("ch1", "tb1", "Introduction", 1, 2).
		AddRow("ch2", "tb1", "Chapter 1", 2, 0)
	mock.ExpectQuery(`FROM chapters c WHERE c.textbook_id = \? ORDER BY c.chapter_number`).WithArgs("tb1").WillReturnRows(rows)

	chapters, err := repo.ListChapters(context.Background(), "tb1")

	require.NoError(t, err)
	require.Len(t, chapters, 2)
	assert.Equal(t, 2, chapters[0].QuestionCount)
	assert.Equal(t, 2, chapters[1].Number)
	assert.Empty(t, chapters[1].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTextbookConverters(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	tb := &domain.Textbook{ID: "tb1", Title: "T", Author: "A", FilePath: "p", CreatedAt: now}

	m := fromDomainTextbook(tb)
	assert.Equal(t, sql.NullString{String: "A", Valid: true}, m.Author)
	assert.Equal(t, tb, toDomainTextbook(m))

	assert.Nil(t, toDomainTextbook(nil))
	assert.Nil(t, fromDomainTextbook(nil))
	assert.Nil(t, toDomainChapter(nil))
	assert.Equal(t, "x", toDomainChapter(&models.Chapter{Content: "x"}).Text)
}
