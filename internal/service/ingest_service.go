package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"quiz-maker/internal/adapter/pdftext"
	"quiz-maker/internal/config"
	"quiz-maker/internal/domain"
	"quiz-maker/internal/dto"
	"quiz-maker/internal/logger"
)

// IngestFormat selects how questions are obtained from chapter text.
type IngestFormat string

const (
	// FormatText synthesizes questions from chapter prose.
	FormatText IngestFormat = "text"
	// FormatSheet parses prewritten numbered questions with lettered options.
	FormatSheet IngestFormat = "sheet"
)

// ParseIngestFormat maps user input to a format. Empty means FormatText.
func ParseIngestFormat(s string) (IngestFormat, error) {
	switch IngestFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatSheet:
		return FormatSheet, nil
	default:
		return "", domain.NewInvalidInputError(fmt.Sprintf("unknown format %q: use text or sheet", s))
	}
}

// IngestRequest describes one stored document to process.
type IngestRequest struct {
	Title    string // defaults to the file's base name without extension
	Author   string
	FilePath string
	Format   IngestFormat
}

// IngestSummary reports what was persisted for one document.
type IngestSummary struct {
	TextbookID string
	Title      string
	Chapters   int
	Questions  int
}

// IngestService turns documents into textbooks, chapters and questions.
type IngestService interface {
	IngestFile(ctx context.Context, req IngestRequest) (*IngestSummary, error)
	ListTextbooks(ctx context.Context) ([]dto.TextbookResponse, error)
	ListChapters(ctx context.Context, textbookID string) ([]dto.ChapterResponse, error)
}

// ExtractorFactory chooses a page extractor for a path.
type ExtractorFactory func(path string) (pdftext.Extractor, error)

type ingestService struct {
	textbookRepo  domain.TextbookRepository
	questionRepo  domain.QuestionRepository
	txManager     domain.TransactionManager
	extractorFor  ExtractorFactory
	questionLimit int
}

// NewIngestService creates an IngestService. A nil factory uses pdftext.ForFile.
func NewIngestService(
	textbookRepo domain.TextbookRepository,
	questionRepo domain.QuestionRepository,
	txManager domain.TransactionManager,
	extractorFor ExtractorFactory,
	cfg *config.Config,
) IngestService {
	if extractorFor == nil {
		extractorFor = pdftext.ForFile
	}
	limit := domain.DefaultQuestionsPerChapter
	if cfg != nil && cfg.Ingest.QuestionsPerChapter > 0 {
		limit = cfg.Ingest.QuestionsPerChapter
	}
	return &ingestService{
		textbookRepo:  textbookRepo,
		questionRepo:  questionRepo,
		txManager:     txManager,
		extractorFor:  extractorFor,
		questionLimit: limit,
	}
}

func (s *ingestService) IngestFile(ctx context.Context, req IngestRequest) (*IngestSummary, error) {
	log := logger.Named("ingest").With(zap.String("file", req.FilePath))

	title := strings.TrimSpace(req.Title)
	if title == "" {
		base := filepath.Base(req.FilePath)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	textbook := domain.NewTextbook(title, strings.TrimSpace(req.Author), req.FilePath)
	if err := textbook.Validate(); err != nil {
		return nil, err
	}

	extractor, err := s.extractorFor(req.FilePath)
	if err != nil {
		return nil, err
	}
	pages, err := extractor.ExtractPages(ctx, req.FilePath)
	if err != nil {
		log.Error("failed to extract pages", zap.Error(err))
		return nil, err
	}

	set := domain.Segment(pages)
	summary := &IngestSummary{Title: title}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.textbookRepo.CreateTextbook(txCtx, textbook); err != nil {
			return err
		}
		for _, chapter := range set.Chapters(textbook.ID) {
			if err := s.textbookRepo.CreateChapter(txCtx, chapter); err != nil {
				return err
			}
			summary.Chapters++

			questions := s.questionsFor(chapter.Text, req.Format)
			if len(questions) == 0 {
				continue
			}
			batch := make([]*domain.Question, len(questions))
			for i := range questions {
				questions[i].ChapterID = chapter.ID
				batch[i] = &questions[i]
			}
			if err := s.questionRepo.CreateQuestions(txCtx, batch); err != nil {
				return err
			}
			summary.Questions += len(batch)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to persist textbook", zap.Error(err))
		return nil, domain.NewInternalError("Failed to store textbook", err)
	}

	summary.TextbookID = textbook.ID
	log.Info("ingested textbook",
		zap.String("textbook_id", textbook.ID),
		zap.Int("chapters", summary.Chapters),
		zap.Int("questions", summary.Questions))
	return summary, nil
}

func (s *ingestService) questionsFor(text string, format IngestFormat) []domain.Question {
	if format == FormatSheet {
		return domain.ParseQuestionSheet(text)
	}
	return domain.Synthesize(text, s.questionLimit)
}

func (s *ingestService) ListTextbooks(ctx context.Context) ([]dto.TextbookResponse, error) {
	textbooks, err := s.textbookRepo.ListTextbooks(ctx)
	if err != nil {
		logger.Get().Error("failed to list textbooks", zap.Error(err))
		return nil, domain.NewInternalError("Failed to list textbooks", err)
	}
	resp := make([]dto.TextbookResponse, 0, len(textbooks))
	for _, t := range textbooks {
		resp = append(resp, dto.TextbookResponse{
			ID:        t.ID,
			Title:     t.Title,
			Author:    t.Author,
			Chapters:  t.ChapterCount,
			CreatedAt: t.CreatedAt,
		})
	}
	return resp, nil
}

func (s *ingestService) ListChapters(ctx context.Context, textbookID string) ([]dto.ChapterResponse, error) {
	textbook, err := s.textbookRepo.GetTextbookByID(ctx, textbookID)
	if err != nil {
		logger.Get().Error("failed to get textbook", zap.String("textbook_id", textbookID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to get textbook", err)
	}
	if textbook == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("textbook %s not found", textbookID))
	}

	chapters, err := s.textbookRepo.ListChapters(ctx, textbookID)
	if err != nil {
		logger.Get().Error("failed to list chapters", zap.String("textbook_id", textbookID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to list chapters", err)
	}
	resp := make([]dto.ChapterResponse, 0, len(chapters))
	for _, c := range chapters {
		resp = append(resp, dto.ChapterResponse{
			ID:            c.ID,
			Title:         c.Title,
			Number:        c.Number,
			QuestionCount: c.QuestionCount,
		})
	}
	return resp, nil
}
