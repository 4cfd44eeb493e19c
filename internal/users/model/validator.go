package model

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// FormatValidationReasons converts validator errors into one human-readable
// reason per violated field. Every violation is reported, not just the first.
func FormatValidationReasons(err error) []string {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	reasons := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			reasons = append(reasons, field+" is required")
		case "email":
			reasons = append(reasons, field+" must be a valid email address")
		case "max":
			reasons = append(reasons, field+" is too long")
		case "min":
			reasons = append(reasons, field+" is too short")
		default:
			reasons = append(reasons, field+" failed on the '"+e.Tag()+"' rule")
		}
	}
	return reasons
}

// FormatValidationError converts validator errors to a single ErrorDetail.
// Used by request-envelope Validate() methods where one error is enough.
func FormatValidationError(err error) *ErrorDetail {
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		e := validationErrors[0]
		return &ErrorDetail{
			Code:    "bad_request",
			Message: "Field validation for '" + e.Field() + "' failed on the '" + e.Tag() + "' tag",
		}
	}

	return &ErrorDetail{
		Code:    "bad_request",
		Message: err.Error(),
	}
}
