package exceptions

import (
	"errors"
	"simrs-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first field failure of a validator run
// into a client-facing sentence, e.g. "visittype must be one of [igd, ...]".
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	firstErr := validationErrors[0]
	tag := firstErr.Tag()
	message, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		message = "is invalid"
	}

	if constvars.TagsWithParams[tag] {
		param := firstErr.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		message = strings.Replace(message, "%s", param, 1)
	}
	return strings.ToLower(firstErr.Field()) + " " + message
}
