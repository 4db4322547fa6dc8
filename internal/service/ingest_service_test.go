package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quiz-maker/internal/config"
	"quiz-maker/internal/domain"
)

const longChapterPage = "Chapter 1: Basics\n" +
	"Goroutines are functions that run concurrently with other functions in the same address space. " +
	"Short one. " +
	"Channels are the pipes that connect concurrent goroutines and let them exchange typed values."

func newTestIngestService(tb *MockTextbookRepository, qr *MockQuestionRepository, tx *fakeTxManager, pages []string, err error) IngestService {
	cfg := &config.Config{Ingest: config.IngestConfig{QuestionsPerChapter: 5}}
	return NewIngestService(tb, qr, tx, extractorReturning(pages, err), cfg)
}

func TestIngestFile_PersistsChaptersAndQuestions(t *testing.T) {
	tb := new(MockTextbookRepository)
	qr := new(MockQuestionRepository)
	tx := &fakeTxManager{}

	tb.On("CreateTextbook", mock.Anything, mock.MatchedBy(func(book *domain.Textbook) bool {
		return book.Title == "go-basics" && book.Author == "Rob"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Textbook).ID = "tb-1"
	}).Return(nil).Once()

	var chapters []*domain.Chapter
	tb.On("CreateChapter", mock.Anything, mock.AnythingOfType("*domain.Chapter")).Run(func(args mock.Arguments) {
		c := args.Get(1).(*domain.Chapter)
		c.ID = "ch-" + c.Title
		chapters = append(chapters, c)
	}).Return(nil).Twice()

	qr.On("CreateQuestions", mock.Anything, mock.MatchedBy(func(qs []*domain.Question) bool {
		return len(qs) == 2 && qs[0].ChapterID == "ch-Chapter 1: Basics" && qs[1].ChapterID == "ch-Chapter 1: Basics"
	})).Return(nil).Once()

	service := newTestIngestService(tb, qr, tx, []string{"Preface.", longChapterPage}, nil)
	summary, err := service.IngestFile(context.Background(), IngestRequest{
		Author:   " Rob ",
		FilePath: "/uploads/go-basics.txt",
	})

	require.NoError(t, err)
	assert.Equal(t, "tb-1", summary.TextbookID)
	assert.Equal(t, 2, summary.Chapters)
	assert.Equal(t, 2, summary.Questions)
	assert.Equal(t, 1, tx.calls)

	require.Len(t, chapters, 2)
	assert.Equal(t, "Introduction", chapters[0].Title)
	assert.Equal(t, 1, chapters[0].Number)
	assert.Equal(t, 2, chapters[1].Number)
	assert.Equal(t, "tb-1", chapters[1].TextbookID)

	tb.AssertExpectations(t)
	qr.AssertExpectations(t)
}

func TestIngestFile_SheetFormat(t *testing.T) {
	tb := new(MockTextbookRepository)
	qr := new(MockQuestionRepository)

	tb.On("CreateTextbook", mock.Anything, mock.Anything).Return(nil)
	tb.On("CreateChapter", mock.Anything, mock.Anything).Return(nil)
	qr.On("CreateQuestions", mock.Anything, mock.MatchedBy(func(qs []*domain.Question) bool {
		return len(qs) == 1 && qs[0].CorrectAnswer == "A lightweight thread"
	})).Return(nil).Once()

	sheet := "1. What is a goroutine?\na) A lightweight thread\nb) A package\n2. Dangling question"
	service := newTestIngestService(tb, qr, &fakeTxManager{}, []string{sheet}, nil)
	summary, err := service.IngestFile(context.Background(), IngestRequest{
		Title:    "Sheet",
		FilePath: "sheet.txt",
		Format:   FormatSheet,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Chapters)
	assert.Equal(t, 1, summary.Questions)
	qr.AssertExpectations(t)
}

func TestIngestFile_ExtractionError(t *testing.T) {
	tb := new(MockTextbookRepository)
	qr := new(MockQuestionRepository)
	tx := &fakeTxManager{}

	service := newTestIngestService(tb, qr, tx, nil, domain.NewInvalidInputError("not a pdf"))
	_, err := service.IngestFile(context.Background(), IngestRequest{FilePath: "broken.pdf"})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Zero(t, tx.calls)
	tb.AssertNotCalled(t, "CreateTextbook", mock.Anything, mock.Anything)
}

func TestIngestFile_RepositoryErrorIsInternal(t *testing.T) {
	tb := new(MockTextbookRepository)
	qr := new(MockQuestionRepository)

	tb.On("CreateTextbook", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	service := newTestIngestService(tb, qr, &fakeTxManager{}, []string{"hello"}, nil)
	_, err := service.IngestFile(context.Background(), IngestRequest{FilePath: "a.txt"})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}

func TestParseIngestFormat(t *testing.T) {
	f, err := ParseIngestFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseIngestFormat(" SHEET ")
	require.NoError(t, err)
	assert.Equal(t, FormatSheet, f)

	_, err = ParseIngestFormat("csv")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestListTextbooks(t *testing.T) {
	tb := new(MockTextbookRepository)
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tb.On("ListTextbooks", mock.Anything).Return([]*domain.Textbook{
		{ID: "tb-1", Title: "Go", Author: "Rob", ChapterCount: 3, CreatedAt: created},
	}, nil)

	service := newTestIngestService(tb, new(MockQuestionRepository), &fakeTxManager{}, nil, nil)
	list, err := service.ListTextbooks(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "tb-1", list[0].ID)
	assert.Equal(t, 3, list[0].Chapters)
	assert.Equal(t, created, list[0].CreatedAt)
}

func TestListChapters(t *testing.T) {
	t.Run("unknown textbook", func(t *testing.T) {
		tb := new(MockTextbookRepository)
		tb.On("GetTextbookByID", mock.Anything, "missing").Return(nil, nil)

		service := newTestIngestService(tb, new(MockQuestionRepository), &fakeTxManager{}, nil, nil)
		_, err := service.ListChapters(context.Background(), "missing")

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("with question counts", func(t *testing.T) {
		tb := new(MockTextbookRepository)
		tb.On("GetTextbookByID", mock.Anything, "tb-1").Return(&domain.Textbook{ID: "tb-1"}, nil)
		tb.On("ListChapters", mock.Anything, "tb-1").Return([]*domain.Chapter{
			{ID: "c1", Title: "Introduction", Number: 1, QuestionCount: 0},
			{ID: "c2", Title: "Chapter 1", Number: 2, QuestionCount: 4},
		}, nil)

		service := newTestIngestService(tb, new(MockQuestionRepository), &fakeTxManager{}, nil, nil)
		chapters, err := service.ListChapters(context.Background(), "tb-1")

		require.NoError(t, err)
		require.Len(t, chapters, 2)
		assert.Equal(t, 4, chapters[1].QuestionCount)
		assert.Equal(t, 2, chapters[1].Number)
	})
}
