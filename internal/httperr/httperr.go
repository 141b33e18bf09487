// Package httperr defines the structured errors rendered by the error
// boundary middleware. Components signal failure with an *Error (or a
// sentinel the handler wraps into one); only the boundary writes responses.
package httperr

import (
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
)

// FieldError is a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Status  int          `json:"-"`
	Message string       `json:"error"`
	Fields  []FieldError `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// FromValidation converts an ozzo validation result into a 400 carrying the
// per-field failures, ordered by field name. Non-validation errors become a
// plain 400 with the error text.
func FromValidation(err error) *Error {
	verrs, ok := err.(validation.Errors)
	if !ok {
		return BadRequest(err.Error())
	}

	fields := make([]FieldError, 0, len(verrs))
	for field, ferr := range verrs {
		fields = append(fields, FieldError{Field: field, Message: ferr.Error()})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })

	return &Error{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Fields:  fields,
	}
}
