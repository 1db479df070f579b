package errors

import "errors"

// Exit codes returned by the create-app binary.
const (
	// ExitSuccess indicates the project was scaffolded.
	ExitSuccess = 0

	// ExitCancelled indicates the user declined or aborted a prompt.
	ExitCancelled = 1

	// ExitGeneralError indicates an unspecified fatal error.
	ExitGeneralError = 2

	// ExitParseError indicates the template manifest could not be parsed.
	ExitParseError = 3

	// ExitFilesystemError indicates a copy, create, or remove failure.
	ExitFilesystemError = 4

	// ExitNotFound indicates a template directory was missing.
	ExitNotFound = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Err is the underlying error.
	Err error

	// Code is the process exit code.
	Code int

	// Printed reports that the command layer already wrote the message.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrCancelled):
		return ExitCancelled
	case errors.Is(err, ErrParse):
		return ExitParseError
	case errors.Is(err, ErrFilesystem):
		return ExitFilesystemError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitCancelled:
		return "Cancelled"
	case ExitGeneralError:
		return "General Error"
	case ExitParseError:
		return "Parse Error"
	case ExitFilesystemError:
		return "Filesystem Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
