package validation

import (
	"regexp"
	"strings"

	"quiz-maker/internal/domain"
)

const (
	MaxQuizQuestions    = 100
	MaxTimeLimitMinutes = 24 * 60
)

var validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateID checks a path or body identifier.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}

	return errors
}

// ValidateCreateQuizRequest checks the optional numeric fields only when they
// are present. Non-positive values are left to quiz assembly, which rejects
// them as invalid requests.
func (v *Validator) ValidateCreateQuizRequest(chapterID string, numQuestions, timeLimit *int) domain.ValidationErrors {
	errors := v.ValidateID("chapter_id", chapterID)

	if numQuestions != nil && *numQuestions > MaxQuizQuestions {
		errors = append(errors, domain.NewOutOfRangeError("num_questions", *numQuestions, 1, MaxQuizQuestions))
	}
	if timeLimit != nil && *timeLimit > MaxTimeLimitMinutes {
		errors = append(errors, domain.NewOutOfRangeError("time_limit", *timeLimit, 1, MaxTimeLimitMinutes))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	return validULID.MatchString(s)
}
