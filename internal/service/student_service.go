package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"quiz-maker/internal/domain"
	"quiz-maker/internal/dto"
	"quiz-maker/internal/logger"
)

// StudentService handles registration and result history.
type StudentService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	GetStudent(ctx context.Context, studentID string) (*dto.StudentDetailResponse, error)
	ListResults(ctx context.Context, studentID string) ([]dto.ResultSummaryResponse, error)
	IsRegistered(ctx context.Context, studentID string) (bool, error)
}

type studentService struct {
	studentRepo domain.StudentRepository
	resultRepo  domain.ResultRepository
	auth        AuthService
}

func NewStudentService(studentRepo domain.StudentRepository, resultRepo domain.ResultRepository, auth AuthService) StudentService {
	return &studentService{studentRepo: studentRepo, resultRepo: resultRepo, auth: auth}
}

func (s *studentService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	student := domain.NewStudent(req.Name, req.Email)
	if err := student.Validate(); err != nil {
		return nil, err
	}
	student.Email = strings.ToLower(student.Email)

	existing, err := s.studentRepo.GetStudentByEmail(ctx, student.Email)
	if err != nil {
		logger.Get().Error("failed to look up student email", zap.Error(err))
		return nil, domain.NewInternalError("Failed to register student", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("Email already registered")
	}

	if err := s.studentRepo.CreateStudent(ctx, student); err != nil {
		logger.Get().Error("failed to create student", zap.String("email", student.Email), zap.Error(err))
		return nil, domain.NewInternalError("Failed to register student", err)
	}

	token, expiresAt, err := s.auth.IssueToken(student.ID)
	if err != nil {
		logger.Get().Error("failed to issue token", zap.String("student_id", student.ID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to issue access token", err)
	}

	logger.Get().Info("student registered", zap.String("student_id", student.ID))
	return &dto.RegisterResponse{
		StudentResponse: toStudentResponse(student),
		AccessToken:     token,
		TokenType:       "Bearer",
		ExpiresIn:       int64(time.Until(expiresAt).Seconds()),
	}, nil
}

func (s *studentService) GetStudent(ctx context.Context, studentID string) (*dto.StudentDetailResponse, error) {
	student, err := s.getStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	results, err := s.listResults(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	return &dto.StudentDetailResponse{
		StudentResponse: toStudentResponse(student),
		QuizResults:     results,
	}, nil
}

func (s *studentService) ListResults(ctx context.Context, studentID string) ([]dto.ResultSummaryResponse, error) {
	student, err := s.getStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.listResults(ctx, student.ID)
}

func (s *studentService) IsRegistered(ctx context.Context, studentID string) (bool, error) {
	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		logger.Get().Error("failed to check registration", zap.String("student_id", studentID), zap.Error(err))
		return false, domain.NewInternalError("Failed to check registration", err)
	}
	return student != nil, nil
}

func (s *studentService) getStudent(ctx context.Context, studentID string) (*domain.Student, error) {
	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		logger.Get().Error("failed to get student", zap.String("student_id", studentID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to get student", err)
	}
	if student == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("student %s not found", studentID))
	}
	return student, nil
}

func (s *studentService) listResults(ctx context.Context, studentID string) ([]dto.ResultSummaryResponse, error) {
	results, err := s.resultRepo.ListResultsByStudent(ctx, studentID)
	if err != nil {
		logger.Get().Error("failed to list results", zap.String("student_id", studentID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to list results", err)
	}
	summaries := make([]dto.ResultSummaryResponse, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, dto.ResultSummaryResponse{
			ID:            r.ID,
			QuizID:        r.QuizID,
			Score:         r.Score,
			TimeTaken:     r.TimeTaken,
			QuestionTimes: r.QuestionTimes,
			CompletedAt:   r.CompletedAt,
		})
	}
	return summaries, nil
}

func toStudentResponse(s *domain.Student) dto.StudentResponse {
	return dto.StudentResponse{ID: s.ID, Name: s.Name, Email: s.Email}
}
