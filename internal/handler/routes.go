package handler

import (
	"github.com/gofiber/fiber/v2"

	"quiz-maker/internal/middleware"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Textbook *TextbookHandler
	Quiz     *QuizHandler
	Student  *StudentHandler
	Auth     middleware.TokenValidator
}

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(app *fiber.App, h Handlers) {
	vm := middleware.NewValidationMiddleware()
	api := app.Group("/api")

	pdf := api.Group("/pdf")
	pdf.Post("/upload", h.Textbook.Upload)
	pdf.Get("/textbooks", h.Textbook.ListTextbooks)
	pdf.Get("/textbooks/:id/chapters", vm.ValidateIDParam("id"), h.Textbook.ListChapters)

	quiz := api.Group("/quiz")
	quiz.Post("/create", h.Quiz.CreateQuiz)
	quiz.Post("/submit", middleware.Protected(h.Auth), vm.ValidateSubmissionBody(), h.Quiz.SubmitQuiz)
	quiz.Get("/results/:id", vm.ValidateIDParam("id"), h.Quiz.GetResult)
	quiz.Get("/:id/results/export", vm.ValidateIDParam("id"), h.Quiz.ExportResults)
	quiz.Get("/:id", vm.ValidateIDParam("id"), h.Quiz.GetQuiz)

	user := api.Group("/user")
	user.Post("/register", h.Student.Register)
	user.Get("/check-registration", h.Student.CheckRegistration)
	user.Get("/results/:id", vm.ValidateIDParam("id"), h.Student.ListResults)
	user.Get("/:id", vm.ValidateIDParam("id"), h.Student.GetStudent)
}
