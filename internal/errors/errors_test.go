//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrCancelled, ErrValidation, ErrParse, ErrFilesystem, ErrNotFound}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "manifest parse failed",
		Message:  "unexpected end of JSON input",
		Location: "template-minimal/package.json",
		Hint:     "The template manifest must be a JSON object.",
	}

	out := detail.Error()

	assert.Contains(t, out, "Error: manifest parse failed")
	assert.Contains(t, out, "Location: template-minimal/package.json")
	assert.Contains(t, out, "unexpected end of JSON input")
	assert.Contains(t, out, "Hint: The template manifest must be a JSON object.")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewParseError(t *testing.T) {
	cause := errors.New("invalid character '}'")
	err := NewParseError("package.json", cause)

	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, cause)

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "package.json", detail.Location)
	assert.Equal(t, cause.Error(), detail.Message)
}

func TestNewFilesystemError(t *testing.T) {
	err := NewFilesystemError("creating directory", "/tmp/x", fs.ErrPermission)

	assert.ErrorIs(t, err, ErrFilesystem)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), "creating directory")
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Invalid package.json name", "use lowercase letters")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Invalid package.json name")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"cancelled", ErrCancelled, ExitCancelled},
		{"wrapped cancelled", fmt.Errorf("prompt: %w", ErrCancelled), ExitCancelled},
		{"parse error", NewParseError("package.json", errors.New("bad")), ExitParseError},
		{"filesystem error", NewFilesystemError("copy", "a", fs.ErrExist), ExitFilesystemError},
		{"not found", NewNotFoundError("template missing", "template-vue", ""), ExitNotFound},
		{"explicit exit error", NewExitError(errors.New("boom"), 42), 42},
		{"unknown error returns general error", errors.New("unknown"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitCancelled)
	assert.Equal(t, 2, ExitGeneralError)
	assert.Equal(t, 3, ExitParseError)
	assert.Equal(t, 4, ExitFilesystemError)
	assert.Equal(t, 5, ExitNotFound)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Cancelled", ExitCodeName(ExitCancelled))
	assert.Equal(t, "Parse Error", ExitCodeName(ExitParseError))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
