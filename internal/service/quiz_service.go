package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"quiz-maker/internal/cache"
	"quiz-maker/internal/config"
	"quiz-maker/internal/domain"
	"quiz-maker/internal/dto"
	"quiz-maker/internal/logger"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.CreateQuizResponse, error)
	GetQuiz(ctx context.Context, quizID string) (*dto.QuizResponse, error)
	SubmitQuiz(ctx context.Context, studentID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
	GetResult(ctx context.Context, resultID string) (*dto.ResultResponse, error)
}

type quizService struct {
	textbookRepo domain.TextbookRepository
	questionRepo domain.QuestionRepository
	quizRepo     domain.QuizRepository
	studentRepo  domain.StudentRepository
	resultRepo   domain.ResultRepository
	txManager    domain.TransactionManager
	cache        domain.Cache
	quizTTL      time.Duration
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	textbookRepo domain.TextbookRepository,
	questionRepo domain.QuestionRepository,
	quizRepo domain.QuizRepository,
	studentRepo domain.StudentRepository,
	resultRepo domain.ResultRepository,
	txManager domain.TransactionManager,
	cache domain.Cache,
	cfg *config.Config,
) QuizService {
	var ttl time.Duration
	if cfg != nil {
		ttl = cfg.Cache.QuizTTL
	}
	return &quizService{
		textbookRepo: textbookRepo,
		questionRepo: questionRepo,
		quizRepo:     quizRepo,
		studentRepo:  studentRepo,
		resultRepo:   resultRepo,
		txManager:    txManager,
		cache:        cache,
		quizTTL:      ttl,
	}
}

func (s *quizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.CreateQuizResponse, error) {
	chapter, err := s.textbookRepo.GetChapterByID(ctx, req.ChapterID)
	if err != nil {
		logger.Get().Error("failed to get chapter", zap.String("chapter_id", req.ChapterID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to get chapter", err)
	}
	if chapter == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("chapter %s not found", req.ChapterID))
	}

	pool, err := s.questionRepo.ListQuestionsByChapter(ctx, chapter.ID)
	if err != nil {
		logger.Get().Error("failed to load question pool", zap.String("chapter_id", chapter.ID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to load questions", err)
	}

	count := domain.DefaultQuizQuestionCount
	if req.NumQuestions != nil {
		count = *req.NumQuestions
	}
	timeLimit := domain.DefaultTimeLimitMinutes
	if req.TimeLimit != nil {
		timeLimit = *req.TimeLimit
	}

	quiz, err := domain.Assemble(chapter.ID, pool, count, timeLimit)
	if err != nil {
		return nil, err
	}
	chapterTitle := req.ChapterTitle
	if chapterTitle == "" {
		chapterTitle = chapter.Title
	}
	quiz.Title = domain.QuizTitle(chapterTitle)

	if err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.quizRepo.CreateQuiz(txCtx, quiz)
	}); err != nil {
		logger.Get().Error("failed to save quiz", zap.String("chapter_id", chapter.ID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}

	logger.Get().Info("quiz created",
		zap.String("quiz_id", quiz.ID),
		zap.String("chapter_id", chapter.ID),
		zap.Int("questions", len(quiz.Questions)))

	return &dto.CreateQuizResponse{
		QuizID:       quiz.ID,
		Title:        quiz.Title,
		NumQuestions: len(quiz.Questions),
		TimeLimit:    quiz.TimeLimitMinutes,
	}, nil
}

func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*dto.QuizResponse, error) {
	key := cache.QuizDeliveryKey(quizID)

	var cached dto.QuizResponse
	err := cache.GetJSON(ctx, s.cache, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("quiz cache read failed", zap.String("key", key), zap.Error(err))
	}

	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	resp := &dto.QuizResponse{
		ID:        quiz.ID,
		ChapterID: quiz.ChapterID,
		Title:     quiz.Title,
		TimeLimit: quiz.TimeLimitMinutes,
		Questions: make([]dto.QuizQuestionResponse, 0, len(quiz.Questions)),
	}
	for _, qq := range quiz.Questions {
		resp.Questions = append(resp.Questions, dto.QuizQuestionResponse{
			ID:      qq.Question.ID,
			Text:    qq.Question.Text,
			Options: qq.Question.Options,
			Order:   qq.Order,
		})
	}

	if err := cache.SetJSON(ctx, s.cache, key, resp, s.quizTTL); err != nil {
		logger.Get().Warn("quiz cache write failed", zap.String("key", key), zap.Error(err))
	}
	return resp, nil
}

func (s *quizService) loadQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		logger.Get().Error("failed to get quiz", zap.String("quiz_id", quizID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("quiz %s not found", quizID))
	}
	return quiz, nil
}

func (s *quizService) SubmitQuiz(ctx context.Context, studentID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		logger.Get().Error("failed to get student", zap.String("student_id", studentID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to get student", err)
	}
	if student == nil {
		return nil, domain.NewUnauthorizedError("student is not registered")
	}

	quiz, err := s.loadQuiz(ctx, req.QuizID)
	if err != nil {
		return nil, err
	}

	result, err := domain.Grade(quiz, req.Answers, req.QuestionTimes)
	if err != nil {
		return nil, err
	}
	result.StudentID = student.ID

	if err := s.resultRepo.CreateResult(ctx, result); err != nil {
		logger.Get().Error("failed to save result",
			zap.String("quiz_id", quiz.ID),
			zap.String("student_id", student.ID),
			zap.Error(err))
		return nil, domain.NewInternalError("Failed to save result", err)
	}

	logger.Get().Info("quiz submitted",
		zap.String("result_id", result.ID),
		zap.String("quiz_id", quiz.ID),
		zap.Float64("score", result.Score))

	return &dto.SubmitQuizResponse{
		ResultID:  result.ID,
		Score:     result.Score,
		Correct:   result.CorrectCount,
		Total:     result.TotalCount,
		TimeTaken: result.TimeTaken,
	}, nil
}

func (s *quizService) GetResult(ctx context.Context, resultID string) (*dto.ResultResponse, error) {
	result, err := s.resultRepo.GetResultByID(ctx, resultID)
	if err != nil {
		logger.Get().Error("failed to get result", zap.String("result_id", resultID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to get result", err)
	}
	if result == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("result %s not found", resultID))
	}

	quiz, err := s.loadQuiz(ctx, result.QuizID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ResultResponse{
		ID:            result.ID,
		QuizID:        result.QuizID,
		StudentID:     result.StudentID,
		Score:         result.Score,
		Correct:       result.CorrectCount,
		Total:         result.TotalCount,
		TimeTaken:     result.TimeTaken,
		QuestionTimes: result.QuestionTimes,
		Answers:       result.Answers,
		CompletedAt:   result.CompletedAt,
		Questions:     make([]dto.QuestionResultResponse, 0, len(quiz.Questions)),
	}
	for _, qq := range quiz.Questions {
		answer := result.Answers[qq.Question.ID]
		resp.Questions = append(resp.Questions, dto.QuestionResultResponse{
			ID:            qq.Question.ID,
			Text:          qq.Question.Text,
			CorrectAnswer: qq.Question.CorrectAnswer,
			StudentAnswer: answer,
			IsCorrect:     answer == qq.Question.CorrectAnswer,
		})
	}
	return resp, nil
}
