// Package server provides the HTTP REST API for the AI interviewer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// statusCoder is implemented by request errors that map to a specific
// HTTP status.
type statusCoder interface {
	httpStatus() int
}

// HTTPStatus maps an error to its HTTP status, defaulting to 500.
func HTTPStatus(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.httpStatus()
	}
	return http.StatusInternalServerError
}

// ErrInterviewNotFound indicates the interview does not exist.
type ErrInterviewNotFound struct {
	ID uuid.UUID
}

func (e *ErrInterviewNotFound) Error() string {
	return fmt.Sprintf("interview not found: %s", e.ID)
}

func (e *ErrInterviewNotFound) httpStatus() int { return http.StatusNotFound }

// ErrInterviewCompleted indicates a write against an already completed
// interview.
type ErrInterviewCompleted struct {
	ID uuid.UUID
}

func (e *ErrInterviewCompleted) Error() string {
	return fmt.Sprintf("interview already completed: %s", e.ID)
}

func (e *ErrInterviewCompleted) httpStatus() int { return http.StatusConflict }

// ErrSessionMismatch indicates the session token is bound to a different
// interview than the one in the path.
type ErrSessionMismatch struct{}

func (e *ErrSessionMismatch) Error() string {
	return "session token does not match this interview"
}

func (e *ErrSessionMismatch) httpStatus() int { return http.StatusForbidden }

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *ErrValidation) httpStatus() int { return http.StatusBadRequest }
