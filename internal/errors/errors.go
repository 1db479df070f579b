// Package errors provides the error taxonomy and exit codes for create-app.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory the error refers to (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewParseError creates a manifest parse error. The underlying decoder error
// is kept in the message so the offset reported by encoding/json survives.
func NewParseError(location string, err error) error {
	return &DetailError{
		Type:     "manifest parse failed",
		Message:  err.Error(),
		Location: location,
		Hint:     "The template manifest must be a JSON object.",
		Cause:    fmt.Errorf("%w: %w", ErrParse, err),
	}
}

// NewFilesystemError wraps a failed filesystem operation.
func NewFilesystemError(op, location string, err error) error {
	return &DetailError{
		Type:     "filesystem operation failed",
		Message:  fmt.Sprintf("%s: %v", op, err),
		Location: location,
		Cause:    fmt.Errorf("%w: %w", ErrFilesystem, err),
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}
