package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportErrorMessage(t *testing.T) {
	err := NewTransportError("https://yts.test/api", 503, "unexpected status", nil)
	assert.Contains(t, err.Error(), "status 503")
	assert.Contains(t, err.Error(), "https://yts.test/api")
	assert.True(t, IsTransportError(err))
}

func TestTransportErrorWithoutStatus(t *testing.T) {
	err := NewTransportError("https://yts.test/api", 0, "connection refused", io.EOF)
	assert.NotContains(t, err.Error(), "status")
	require.ErrorIs(t, err, io.EOF)
}

func TestParseErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := NewParseError("list_movies page 3", "decoding response", cause)

	assert.True(t, IsParseError(err))
	assert.False(t, IsTransportError(err))
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "list_movies page 3")
}

func TestStorageErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewStorageError("/data/yts_movies.json", "write", cause)

	assert.True(t, IsStorageError(err))
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "write /data/yts_movies.json")
}

func TestDetectionThroughWrapping(t *testing.T) {
	inner := NewTransportError("https://yts.test", 500, "server error", nil)
	wrapped := fmt.Errorf("fetching page 2: %w", inner)

	assert.True(t, IsTransportError(wrapped))
	assert.False(t, IsParseError(wrapped))
	assert.False(t, IsStorageError(wrapped))
}
