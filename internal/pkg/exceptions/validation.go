package exceptions

import (
	"errors"
	"pacientes-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CollectValidationErrors turns every failed rule into a FieldError, in declaration order.
// Fields with a dedicated message use it whatever rule failed.
func CollectValidationErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, validationErr := range validationErrors {
		fieldName := validationErr.Field()
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldName,
			Message: formatValidationMessage(fieldName, validationErr),
		})
	}
	return fieldErrors
}

func FormatAllValidationErrors(err error) string {
	fieldErrors := CollectValidationErrors(err)
	if len(fieldErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	messages := make([]string, len(fieldErrors))
	for i, fieldErr := range fieldErrors {
		messages[i] = fieldErr.Field + ": " + fieldErr.Message
	}
	return strings.Join(messages, ", ")
}

func formatValidationMessage(fieldName string, validationErr validator.FieldError) string {
	if message, ok := constvars.PatientFieldValidationMessages[fieldName]; ok {
		return message
	}

	tag := validationErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return fieldName + " is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(validationErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", validationErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}
