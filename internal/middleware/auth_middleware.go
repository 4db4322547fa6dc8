package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quiz-maker/internal/logger"
	"quiz-maker/internal/service"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	StudentIDKey        = "studentID" // Key for storing the student id in fiber.Ctx locals
)

// TokenValidator is the part of service.AuthService that Protected needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*service.AccessClaims, error)
}

// Protected requires a valid student access token and stores its subject
// under StudentIDKey.
func Protected(auth TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return unauthorized(c, "MISSING_AUTH_HEADER", "Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return unauthorized(c, "INVALID_AUTH_SCHEME", "Authorization scheme is not Bearer")
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return unauthorized(c, "EMPTY_TOKEN", "Token is empty")
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			logger.Get().Debug("token rejected", zap.String("path", c.Path()), zap.Error(err))
			return unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Locals(StudentIDKey, claims.Subject)
		return c.Next()
	}
}

// StudentID returns the authenticated student id, or "" outside Protected routes.
func StudentID(c *fiber.Ctx) string {
	id, _ := c.Locals(StudentIDKey).(string)
	return id
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Code:    code,
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}
