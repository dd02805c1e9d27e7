// Package server provides the HTTP JSON API of the job search assistant.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBadRequest indicates a body that is not valid JSON for the endpoint
type ErrBadRequest struct {
	Cause error
}

func (e *ErrBadRequest) Error() string {
	return "Invalid request body: " + e.Cause.Error()
}

func (e *ErrBadRequest) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Missing credentials, upstream failures and unreadable replies are all server errors.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		badRequestErr *ErrBadRequest
	)
	if errors.As(err, &validationErr) || errors.As(err, &badRequestErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// validationError turns the first validator failure into an *ErrValidation.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	message := "failed " + fe.Tag() + " check"
	if fe.Tag() == "required" {
		message = "is required"
	}
	return &ErrValidation{Field: field, Message: message}
}
