package errors

import (
	"errors"
	"fmt"
)

// StorageError represents a failure reading or writing the persisted
// catalog snapshot. An absent snapshot is not a StorageError; the store
// treats that as an empty catalog.
type StorageError struct {
	Path string
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a StorageError for the given snapshot path and operation.
func NewStorageError(path, op string, err error) *StorageError {
	return &StorageError{Path: path, Op: op, Err: err}
}

// IsStorageError reports whether err is a StorageError (even when wrapped).
func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}
