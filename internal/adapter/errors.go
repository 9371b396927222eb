package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrBadRequest        = errors.New("bad request")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrServerError       = errors.New("server error")
	ErrNoNetwork         = errors.New("no network")
	ErrMalformedResponse = errors.New("malformed response")
	ErrInvalidAddress    = errors.New("invalid adapter http address")
)

// ServerError is returned for every non-2xx response. It unwraps to the
// sentinel matching StatusCode.
type ServerError struct {
	StatusCode int
	// Message is the errorMessage of the response body, or the raw body
	// when it is not the JSON error payload.
	Message string

	kind error
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (http %d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%s (http %d): %s", e.kind, e.StatusCode, e.Message)
}

func (e *ServerError) Unwrap() error {
	return e.kind
}
