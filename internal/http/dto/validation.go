package dto

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ToMap(errs []ValidationError) map[string]string {
	result := make(map[string]string)
	for _, e := range errs {
		result[e.Field] = e.Message
	}
	return result
}

func ToResponse(errs []ValidationError) string {
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func validateRequired(field, value string) []ValidationError {
	var errs []ValidationError
	if strings.TrimSpace(value) == "" {
		errs = append(errs, ValidationError{Field: field, Message: "is required"})
	}
	return errs
}

func validateMaxLength(field, value string, max int) []ValidationError {
	var errs []ValidationError
	if len(value) > max {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d bytes", max)})
	}
	return errs
}
