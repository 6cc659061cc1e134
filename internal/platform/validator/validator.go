package validator

import (
	"fmt"
	"strings"
)

// FieldError names one invalid field and why it was rejected.
type FieldError struct {
	Field   string
	Message string
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
}

// ValidationError aggregates every field rejection from a single payload so
// callers can report them all at once instead of failing field by field.
type ValidationError struct {
	Errors []FieldError
}

func (ve ValidationError) Error() string {
	parts := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		parts = append(parts, fe.Error())
	}
	return "invalid payload: " + strings.Join(parts, "; ")
}

// Validator checks request payloads before they reach the domain.
type Validator interface {
	Validate(s interface{}) error
}
