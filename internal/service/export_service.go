package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"quiz-maker/internal/domain"
	"quiz-maker/internal/logger"
)

// ResultsSheet is the name of the worksheet written by ExportQuizResults.
const ResultsSheet = "Results"

// ExportService renders stored results as spreadsheets.
type ExportService interface {
	ExportQuizResults(ctx context.Context, quizID string, w io.Writer) error
}

type exportService struct {
	quizRepo   domain.QuizRepository
	resultRepo domain.ResultRepository
}

func NewExportService(quizRepo domain.QuizRepository, resultRepo domain.ResultRepository) ExportService {
	return &exportService{quizRepo: quizRepo, resultRepo: resultRepo}
}

// ExportQuizResults writes one row per result of the quiz, oldest first.
// Question columns hold the student's answer, in quiz order.
func (s *exportService) ExportQuizResults(ctx context.Context, quizID string, w io.Writer) error {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		logger.Get().Error("failed to get quiz for export", zap.String("quiz_id", quizID), zap.Error(err))
		return domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return domain.NewNotFoundError(fmt.Sprintf("quiz %s not found", quizID))
	}
	results, err := s.resultRepo.ListResultsByQuiz(ctx, quizID)
	if err != nil {
		logger.Get().Error("failed to list results for export", zap.String("quiz_id", quizID), zap.Error(err))
		return domain.NewInternalError("Failed to list results", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Get().Warn("failed to close workbook", zap.Error(err))
		}
	}()
	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"Result ID", "Student ID", "Score", "Correct", "Total", "Time Taken (s)", "Completed At"}
	for _, qq := range quiz.Questions {
		header = append(header, fmt.Sprintf("Q%d: %s", qq.Order, qq.Question.Text))
	}
	if err := f.SetSheetRow(ResultsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range results {
		row := []interface{}{
			r.ID,
			r.StudentID,
			r.Score,
			r.CorrectCount,
			r.TotalCount,
			r.TimeTaken,
			r.CompletedAt.UTC().Format(time.RFC3339),
		}
		for _, qq := range quiz.Questions {
			row = append(row, r.Answers[qq.Question.ID])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ResultsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	logger.Get().Info("exported quiz results", zap.String("quiz_id", quizID), zap.Int("rows", len(results)))
	return nil
}
