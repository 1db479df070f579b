package cmdutil

import (
	"errors"
	"fmt"
	"io"

	oerrors "github.com/createapp/cli/internal/errors"
	"github.com/createapp/cli/internal/output"
)

// PrintError writes err to w in a user-friendly format. Structured errors
// print their details; a cancellation prints the cancel marker only.
func PrintError(w io.Writer, err error) {
	var detail *oerrors.DetailError
	switch {
	case errors.As(err, &detail):
		fmt.Fprint(w, detail.Error())
	case errors.Is(err, oerrors.ErrCancelled):
		fmt.Fprintln(w, output.FormatCross("Operation cancelled"))
	default:
		fmt.Fprintln(w, output.FormatCross(err.Error()))
	}
}

// ReportError prints err to w and wraps it with the exit code it maps to,
// marked as already printed.
func ReportError(w io.Writer, err error) error {
	PrintError(w, err)
	code := oerrors.ExitCodeFromError(err)
	output.Debug("command failed", "exit", code, "reason", oerrors.ExitCodeName(code))
	return &oerrors.ExitError{
		Err:     err,
		Code:    code,
		Printed: true,
	}
}
