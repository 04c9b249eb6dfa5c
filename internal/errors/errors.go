package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation is returned when a required field is missing.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials is returned when the username is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated is returned when the request carries no session user.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrNotFound is returned when a delete matched no row.
	ErrNotFound = errors.New("record not found")
)

// ErrorResponse is the body of every JSON failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of JSON successes that carry no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// Messages holds the user-facing text for each failure class of a route.
// Routes in this service word their errors differently, so the mapping is
// parameterized instead of fixed.
type Messages struct {
	Validation   string
	Unauthorized string
	NotFound     string
	Internal     string
}

// MapErrorToHTTP maps domain errors to HTTP errors using the route's messages.
// Anything unrecognised is a store failure and becomes a 500.
func MapErrorToHTTP(err error, msgs Messages) *HTTPError {
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, msgs.Validation)
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, msgs.Unauthorized)
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, msgs.NotFound)
	default:
		return NewHTTPError(http.StatusInternalServerError, msgs.Internal)
	}
}
