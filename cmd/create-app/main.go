// Package main is the entry point for the create-app CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/createapp/cli/internal/cmd"
	oerrors "github.com/createapp/cli/internal/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			return exitErr.Code
		}
		// Non-ExitError: flag parsing, config loading, unexpected failures
		fmt.Fprintln(os.Stderr, err)
		return oerrors.ExitCodeFromError(err)
	}
	return oerrors.ExitSuccess
}
