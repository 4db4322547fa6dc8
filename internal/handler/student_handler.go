package handler

import (
	"github.com/gofiber/fiber/v2"

	"quiz-maker/internal/domain"
	"quiz-maker/internal/dto"
	"quiz-maker/internal/service"
)

// StudentHandler handles student registration and history
type StudentHandler struct {
	service service.StudentService
}

// NewStudentHandler creates a new StudentHandler instance
func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{service: studentService}
}

// Register godoc
// @Summary Register a student
// @Description Creates the student and returns an access token for quiz submission
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Name and email"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /user/register [post]
func (h *StudentHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.service.Register(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CheckRegistration godoc
// @Summary Check whether a student id is registered
// @Tags user
// @Produce json
// @Param student_id query string true "Student ID"
// @Success 200 {object} dto.RegistrationStatusResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /user/check-registration [get]
func (h *StudentHandler) CheckRegistration(c *fiber.Ctx) error {
	studentID := c.Query("student_id")
	if studentID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("student_id")}
	}
	registered, err := h.service.IsRegistered(c.UserContext(), studentID)
	if err != nil {
		return err
	}
	return c.JSON(dto.RegistrationStatusResponse{StudentID: studentID, Registered: registered})
}

// GetStudent godoc
// @Summary Get a student profile with results
// @Tags user
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /user/{id} [get]
func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	resp, err := h.service.GetStudent(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListResults godoc
// @Summary List a student's quiz results
// @Tags user
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {array} dto.ResultSummaryResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /user/results/{id} [get]
func (h *StudentHandler) ListResults(c *fiber.Ctx) error {
	results, err := h.service.ListResults(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(results)
}
