// Package server provides the HTTP REST API for the career coach.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/daniel/career-coach/internal/advisor"
	"github.com/daniel/career-coach/internal/compat"
	"github.com/daniel/career-coach/internal/roadmap"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrForbidden indicates the authenticated user may not perform the action
type ErrForbidden struct {
	Message string
}

func (e *ErrForbidden) Error() string {
	return e.Message
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrForbidden:
		return http.StatusForbidden
	case *ErrValidation:
		return http.StatusBadRequest
	}

	var notFoundErr *roadmap.NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound
	}
	var validationErr *roadmap.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var externalErr *roadmap.ExternalServiceError
	if errors.As(err, &externalErr) {
		return http.StatusBadGateway
	}
	var compatErr *compat.ExternalServiceError
	if errors.As(err, &compatErr) {
		return http.StatusBadGateway
	}
	var malformedErr *advisor.MalformedResponseError
	if errors.As(err, &malformedErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
