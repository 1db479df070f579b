// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	cmdconfig "github.com/createapp/cli/internal/cmd/config"
	"github.com/createapp/cli/internal/cmdtypes"
	"github.com/createapp/cli/internal/cmdutil"
	"github.com/createapp/cli/internal/config"
	"github.com/createapp/cli/internal/output"
)

// NewRootCmd creates the root command for the create-app CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cmdtypes.GlobalConfig{})
}

func newRootCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		globalFlags   cmdutil.GlobalFlags
		scaffoldFlags cmdutil.ScaffoldFlags
	)

	rootCmd := &cobra.Command{
		Use:   "create-app [target-dir]",
		Short: "Scaffold a new project from a template",
		Long: `create-app creates a new project directory from one of its templates.

Anything not given on the command line is asked interactively: the project
name, whether a non-empty target directory may be cleared, a package name
when the directory name is not a valid one, and the template to use.

A target directory named like a subcommand (templates, config, version,
help, completion) must be written as ./<name>; the project is still
named <name>.`,
		Example: `  create-app
  create-app my-app --template vue-ts
  create-app . -t minimal`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, &globalFlags)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, &scaffoldFlags, cfg)
		},
	}

	scaffoldFlags.AddTo(rootCmd)
	globalFlags.AddTo(rootCmd)

	rootCmd.AddCommand(NewTemplatesCmd(cfg))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration into cfg.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *cmdutil.GlobalFlags) error {
	configPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.Config})
	if err != nil {
		return err
	}

	loaded, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		return err
	}

	// Resolve timestamps: flag (if explicitly set) > config > default (off)
	logCfg := output.LogConfig{Verbose: flags.Verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.Timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	templatesDir := config.ResolveTemplatesDir(config.ResolveTemplatesDirOptions{
		FlagValue:   flags.TemplatesDir,
		ConfigValue: loaded.TemplatesDir,
	})
	config.LogResolvedValues(configPath, templatesDir)

	cfg.Config = loaded
	cfg.ConfigPath = configPath.Value
	cfg.TemplatesDir = templatesDir.Value
	cfg.Verbose = flags.Verbose

	return nil
}
