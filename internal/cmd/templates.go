package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/createapp/cli/internal/cmdtypes"
	"github.com/createapp/cli/internal/cmdutil"
	"github.com/createapp/cli/internal/output"
	"github.com/createapp/cli/internal/templates"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		Long: `List the templates create-app can scaffold from.

The NAME column is the value accepted by --template. When a templates
directory is configured, its template-<name> folders are listed instead of
the built-in templates.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			reg, err := cfg.Templates()
			if err != nil {
				return cmdutil.ReportError(c.ErrOrStderr(), err)
			}
			fmt.Fprintln(c.OutOrStdout(), renderTemplates(reg.List()))
			return nil
		},
	}
}

func renderTemplates(list []templates.Template) string {
	tbl := output.NewTable("NAME", "LABEL", "DESCRIPTION")
	for _, t := range list {
		tbl.Row(t.Name, output.Colorize(t.Color, t.Label()), output.StyleDim.Render(t.Description))
	}
	return tbl.String()
}
