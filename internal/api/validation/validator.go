package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TagName is the struct tag holding validation rules, shared with gin binding.
const TagName = "binding"

// FieldError describes one field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// New returns a validator that reads `binding` tags and reports JSON field names.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.SetTagName(TagName)
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		jsonName := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if jsonName == "-" {
			return ""
		}
		if jsonName == "" {
			return field.Name
		}
		return jsonName
	})
	return validate
}

// FormatValidationError converts validator errors into one FieldError per failed rule.
// Errors that are not validation errors yield nil.
func FormatValidationError(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, FieldError{
			Field:   e.Field(),
			Rule:    e.Tag(),
			Param:   e.Param(),
			Message: Message(e.Field(), e.Tag(), e.Param()),
		})
	}
	return fields
}

// Message renders a human readable explanation of a failed rule.
func Message(field, rule, param string) string {
	switch rule {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "type":
		return fmt.Sprintf("%s must be a %s", field, param)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
