// Package cmdutil provides shared command utilities.
// It centralizes flag group management and error reporting for the
// create-app commands.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds the persistent flags every command accepts.
type GlobalFlags struct {
	Config       string
	TemplatesDir string
	Verbose      bool
	Timestamps   bool
}

// AddTo registers the global flags as persistent flags on the given cobra
// command.
func (f *GlobalFlags) AddTo(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.Config, "config", "",
		"Path to config file (env: CREATE_APP_CONFIG)")
	cmd.PersistentFlags().StringVar(&f.TemplatesDir, "templates-dir", "",
		"Directory of template-<name> folders to use instead of the built-in templates (env: CREATE_APP_TEMPLATES_DIR)")
	cmd.PersistentFlags().BoolVarP(&f.Verbose, "verbose", "v", false,
		"Enable verbose output")
	cmd.PersistentFlags().BoolVar(&f.Timestamps, "timestamps", false,
		"Show timestamps in log output")
}

// ScaffoldFlags holds flags that preselect scaffold answers.
type ScaffoldFlags struct {
	Template string
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Template, "template", "t", "",
		"Template to use (list them with: create-app templates)")
}

// ResolveTargetDir returns the target directory from command args. An empty
// result means the project name is asked for.
func ResolveTargetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
