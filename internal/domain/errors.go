package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery signals a search triggered without any query text.
	ErrEmptyQuery = errors.New("empty query")
	// ErrUpstreamStatus signals a non-2xx answer from the movie search API.
	ErrUpstreamStatus = errors.New("upstream returned unsuccessful status")
	// ErrUpstreamUnavailable signals a transport or decoding failure talking to the movie search API.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// StatusError wraps ErrUpstreamStatus with the HTTP status the upstream answered.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUpstreamStatus.Error(), e.StatusCode)
}

func (e *StatusError) Unwrap() error { return ErrUpstreamStatus }

// NewStatusError creates an upstream status error.
func NewStatusError(statusCode int) error {
	return &StatusError{StatusCode: statusCode}
}
