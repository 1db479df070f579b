package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrCancelled indicates the user declined a confirmation or aborted a prompt.
	ErrCancelled = errors.New("operation cancelled")

	// ErrValidation indicates an answer failed its validator.
	ErrValidation = errors.New("validation error")

	// ErrParse indicates a template manifest is not well-formed.
	ErrParse = errors.New("parse error")

	// ErrFilesystem indicates a copy, create, or remove operation failed.
	ErrFilesystem = errors.New("filesystem error")

	// ErrNotFound indicates a template or template directory was not found.
	ErrNotFound = errors.New("not found")
)
