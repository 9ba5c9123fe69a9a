package errors

import (
	"errors"
	"fmt"
)

// ParseError represents a malformed payload from the remote listing service.
// Fatal like TransportError: a partially parsed page could corrupt the
// catalog's dedup invariant.
type ParseError struct {
	Source  string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Source, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a ParseError for the given payload source.
func NewParseError(source, message string, err error) *ParseError {
	return &ParseError{Source: source, Message: message, Err: err}
}

// IsParseError reports whether err is a ParseError (even when wrapped).
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
