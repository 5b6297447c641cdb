package nhl

import (
	"errors"
	"fmt"
)

// ErrRedirectLoop reports that a request exceeded the redirect hop bound.
var ErrRedirectLoop = errors.New("nhl: redirect limit exceeded")

// StatusError captures a non-2xx response from the upstream API.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nhl: %s returned status %d", e.Endpoint, e.StatusCode)
}

// DecodeError captures a response body that did not match the expected JSON
// shape.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("nhl: decoding %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// NetworkError captures a transport-level failure before any response was
// read.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("nhl: requesting %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// IsUnavailable reports whether an error belongs to the gateway taxonomy.
// Screens treat these as "data temporarily unavailable": keep rendering the
// last good payload and let the next tick retry.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRedirectLoop) {
		return true
	}
	var (
		statusErr  *StatusError
		decodeErr  *DecodeError
		networkErr *NetworkError
	)
	return errors.As(err, &statusErr) || errors.As(err, &decodeErr) || errors.As(err, &networkErr)
}
