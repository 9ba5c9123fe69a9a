// Package testutil provides common test utilities for the ytshelf project.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnv provides a sandboxed test environment that validates all paths
// stay within a temporary directory. It automatically cleans up when the
// test completes.
type TestEnv struct {
	t       *testing.T
	rootDir string
}

// NewTestEnv creates a new sandboxed test environment.
// The environment is automatically cleaned up when the test completes.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	return &TestEnv{
		t:       t,
		rootDir: t.TempDir(),
	}
}

// RootDir returns the root directory of the test environment.
func (e *TestEnv) RootDir() string {
	return e.rootDir
}

// Path returns an absolute path within the test environment.
// It validates that the path does not escape the sandbox.
func (e *TestEnv) Path(elem ...string) string {
	e.t.Helper()

	relPath := filepath.Join(elem...)
	absPath := filepath.Join(e.rootDir, relPath)

	cleanPath := filepath.Clean(absPath)

	if !e.isWithinSandbox(cleanPath) {
		e.t.Fatalf("path %q escapes test sandbox %q", cleanPath, e.rootDir)
	}

	return cleanPath
}

// isWithinSandbox checks if a path is within the test environment root.
func (e *TestEnv) isWithinSandbox(path string) bool {
	cleanRoot := filepath.Clean(e.rootDir)
	cleanPath := filepath.Clean(path)

	return strings.HasPrefix(cleanPath, cleanRoot+string(filepath.Separator)) || cleanPath == cleanRoot
}

// WriteFile writes content to a file within the test environment.
// It creates any necessary parent directories.
func (e *TestEnv) WriteFile(path string, content []byte) {
	e.t.Helper()

	absPath := e.Path(path)

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		e.t.Fatalf("failed to create directory %q: %v", dir, err)
	}

	if err := os.WriteFile(absPath, content, 0o644); err != nil {
		e.t.Fatalf("failed to write file %q: %v", absPath, err)
	}
}

// WriteFileString writes a string to a file within the test environment.
func (e *TestEnv) WriteFileString(path, content string) {
	e.t.Helper()
	e.WriteFile(path, []byte(content))
}

// ReadFile reads a file from within the test environment.
func (e *TestEnv) ReadFile(path string) []byte {
	e.t.Helper()

	absPath := e.Path(path)

	content, err := os.ReadFile(absPath)
	if err != nil {
		e.t.Fatalf("failed to read file %q: %v", absPath, err)
	}

	return content
}

// ReadFileString reads a file as a string from within the test environment.
func (e *TestEnv) ReadFileString(path string) string {
	e.t.Helper()
	return string(e.ReadFile(path))
}

// FileExists checks if a file exists within the test environment.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()

	absPath := e.Path(path)
	_, err := os.Stat(absPath)
	return err == nil
}

// RequireFileExists asserts that a file exists within the test environment.
func (e *TestEnv) RequireFileExists(path string) {
	e.t.Helper()

	if !e.FileExists(path) {
		e.t.Fatalf("expected file %q to exist", e.Path(path))
	}
}

// AssertFileContains checks if a file contains the expected string.
func (e *TestEnv) AssertFileContains(path, expected string) {
	e.t.Helper()

	content := e.ReadFileString(path)
	if !strings.Contains(content, expected) {
		e.t.Errorf("file %q does not contain expected string %q", path, expected)
	}
}
