package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/nepcal"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NotFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

func Forbidden(action string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, action)
}

func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrValidation), errors.Is(err, nepcal.ErrInvalidDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Write renders err as JSON. Internal errors never leak their message.
func Write(w http.ResponseWriter, err error) {
	status := Status(err)
	resp := errorResponse{Error: err.Error()}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		resp.Field = vErr.Field
	}
	if status == http.StatusInternalServerError {
		resp = errorResponse{Error: "internal server error"}
	}

	config.JSON(w, status, resp)
}
