package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance
var validate = validator.New()

// validationMessages converts validator errors into the human-readable
// field messages carried in the response envelope.
func validationMessages(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fieldMessage(e))
	}
	return messages
}

func fieldMessage(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "uuid":
		return field + " must be a valid UUID"
	default:
		return field + " is invalid"
	}
}

// bulkValidationErrors validates every element of a bulk payload
// independently and collects all messages instead of failing fast, so
// the caller sees every problem at once. Each message is prefixed with
// the element's index.
func bulkValidationErrors[T any](noun string, payloads []T) []string {
	var errs []string
	for i, payload := range payloads {
		if err := validate.Struct(payload); err != nil {
			errs = append(errs, fmt.Sprintf(
				"%s at index %d: %s",
				titled(noun), i, strings.Join(validationMessages(err), ", "),
			))
		}
	}
	return errs
}
