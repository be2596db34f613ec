// Package server provides the HTTP API for the interview-prep backend.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/interview-prep/internal/interview"
)

// Client-facing error messages. Causes are logged, never sent.
const (
	msgMissingFields   = "Missing required fields: type, role, level, amount, techstack"
	msgInvalidBody     = "Invalid request body"
	msgAuthFailed      = "Authentication failed. Please provide userid in request."
	msgGenerationParse = "Failed to parse generated questions"
	msgInternal        = "Internal server error"
	msgDebugDisabled   = "Debug endpoint disabled in production"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalidBody   *interview.ErrInvalidBody
		missingFields *interview.ErrMissingFields
		authFailed    *interview.ErrAuthLookupFailed
	)
	switch {
	case errors.As(err, &invalidBody), errors.As(err, &missingFields):
		return http.StatusBadRequest
	case errors.As(err, &authFailed):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the fixed message a client sees for err.
func PublicMessage(err error) string {
	var (
		invalidBody   *interview.ErrInvalidBody
		missingFields *interview.ErrMissingFields
		authFailed    *interview.ErrAuthLookupFailed
		parseFailed   *interview.ErrGenerationParse
	)
	switch {
	case errors.As(err, &missingFields):
		return msgMissingFields
	case errors.As(err, &invalidBody):
		return msgInvalidBody
	case errors.As(err, &authFailed):
		return msgAuthFailed
	case errors.As(err, &parseFailed):
		return msgGenerationParse
	default:
		return msgInternal
	}
}
