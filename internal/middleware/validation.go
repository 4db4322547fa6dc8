package middleware

import (
	"github.com/gofiber/fiber/v2"

	"quiz-maker/internal/validation"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateIDParam rejects requests whose path parameter is not a ULID.
func (vm *ValidationMiddleware) ValidateIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateID(param, c.Params(param)); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}
		return c.Next()
	}
}

// ValidateSubmissionBody checks the quiz submission payload shape before it is bound.
func (vm *ValidationMiddleware) ValidateSubmissionBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := validation.ValidateSubmission(c.Body()); err != nil {
			return err
		}
		return c.Next()
	}
}
