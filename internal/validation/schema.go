package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"quiz-maker/internal/domain"
)

const submissionSchema = `{
  "type": "object",
  "required": ["quiz_id"],
  "properties": {
    "quiz_id": {"type": "string", "minLength": 1},
    "answers": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "question_times": {
      "type": "object",
      "additionalProperties": {"type": "number", "minimum": 0}
    }
  }
}`

var submissionLoader = gojsonschema.NewStringLoader(submissionSchema)

// ValidateSubmission checks the shape of a quiz submission body before it is
// decoded.
func ValidateSubmission(body []byte) error {
	result, err := gojsonschema.Validate(submissionLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return domain.NewInvalidInputError(fmt.Sprintf("request body is not valid JSON: %v", err))
	}
	if result.Valid() {
		return nil
	}

	var errors domain.ValidationErrors
	for _, e := range result.Errors() {
		field := e.Field()
		if e.Type() == "required" {
			if prop, ok := e.Details()["property"].(string); ok {
				field = prop
			}
		}
		errors = append(errors, domain.FieldError{Field: field, Message: e.Description()})
	}
	return errors
}
