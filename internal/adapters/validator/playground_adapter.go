package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	platformValidator "scaffold/internal/platform/validator"
)

type playgroundValidator struct {
	validate *validator.Validate
}

func NewPlaygroundAdapter() platformValidator.Validator {
	return &playgroundValidator{
		validate: validator.New(),
	}
}

func (v *playgroundValidator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			outErrors := make([]platformValidator.FieldError, len(validationErrors))
			for i, fe := range validationErrors {
				outErrors[i] = platformValidator.FieldError{
					Field:   strings.ToLower(fe.Field()),
					Message: fieldErrorMessage(fe),
				}
			}
			return platformValidator.ValidationError{Errors: outErrors}
		}
		return err
	}
	return nil
}

func fieldErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("This field must be at least %s", e.Param())
	case "max":
		return fmt.Sprintf("This field must be at most %s", e.Param())
	case "oneof":
		return fmt.Sprintf("This field must be one of: %s", e.Param())
	default:
		return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
	}
}
