// Package errors provides typed errors shared across the ytshelf commands.
package errors

import (
	"errors"
	"fmt"
)

// TransportError represents a network or HTTP failure while talking to the
// remote listing service. It is always fatal to the current run.
type TransportError struct {
	URL        string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error: %s (status %d, url %s)", e.Message, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("transport error: %s (url %s)", e.Message, e.URL)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a TransportError for the given request URL.
func NewTransportError(url string, statusCode int, message string, err error) *TransportError {
	return &TransportError{URL: url, StatusCode: statusCode, Message: message, Err: err}
}

// IsTransportError reports whether err is a TransportError (even when wrapped).
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
