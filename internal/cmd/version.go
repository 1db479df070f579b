package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/createapp/cli/internal/cmdtypes"
	"github.com/createapp/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show create-app version information.

Displays:
  - create-app version, commit, and build date
  - Go version and platform`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.GetInfo().String())
			return nil
		},
	}
}
