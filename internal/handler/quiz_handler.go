package handler

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"quiz-maker/internal/domain"
	"quiz-maker/internal/dto"
	"quiz-maker/internal/middleware"
	"quiz-maker/internal/service"
	"quiz-maker/internal/validation"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	export    service.ExportService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizService, export service.ExportService) *QuizHandler {
	return &QuizHandler{
		service:   quizService,
		export:    export,
		validator: validation.NewValidator(),
	}
}

// CreateQuiz godoc
// @Summary Create a quiz from a chapter
// @Description Picks up to num_questions (default 10) questions of the chapter in creation order
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Quiz request"
// @Success 201 {object} dto.CreateQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/create [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateCreateQuizRequest(req.ChapterID, req.NumQuestions, req.TimeLimit); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetQuiz godoc
// @Summary Get a quiz
// @Description Returns the quiz questions without answers
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	resp, err := h.service.GetQuiz(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.SubmitQuizRequest true "Answers keyed by question id"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.SubmitQuiz(c.UserContext(), middleware.StudentID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetResult godoc
// @Summary Get a quiz result
// @Tags quiz
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/results/{id} [get]
func (h *QuizHandler) GetResult(c *fiber.Ctx) error {
	resp, err := h.service.GetResult(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ExportResults godoc
// @Summary Export quiz results
// @Description Spreadsheet with one row per submission
// @Tags quiz
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Quiz ID"
// @Success 200 {file} file
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{id}/results/export [get]
func (h *QuizHandler) ExportResults(c *fiber.Ctx) error {
	quizID := c.Params("id")
	var buf bytes.Buffer
	if err := h.export.ExportQuizResults(c.UserContext(), quizID, &buf); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="quiz-%s-results.xlsx"`, quizID))
	return c.Send(buf.Bytes())
}
