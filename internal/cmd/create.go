package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/createapp/cli/internal/answers"
	"github.com/createapp/cli/internal/cmdtypes"
	"github.com/createapp/cli/internal/cmdutil"
	"github.com/createapp/cli/internal/output"
	"github.com/createapp/cli/internal/scaffold"
)

func runCreate(c *cobra.Command, args []string, flags *cmdutil.ScaffoldFlags, cfg *cmdtypes.GlobalConfig) error {
	reg, err := cfg.Templates()
	if err != nil {
		return cmdutil.ReportError(c.ErrOrStderr(), err)
	}
	cwd, err := cfg.WorkingDir()
	if err != nil {
		return cmdutil.ReportError(c.ErrOrStderr(), err)
	}

	req := scaffold.Request{
		TargetDir: cmdutil.ResolveTargetDir(args),
		Template:  flags.Template,
	}

	s := scaffold.New(answers.NewResolver(cfg.PromptUI(), reg, cwd), reg)
	res, err := s.Run(c.Context(), req)
	if err != nil {
		output.Debug("scaffold stopped", "state", res.State, "failed_in", res.FailedIn)
		return cmdutil.ReportError(c.ErrOrStderr(), err)
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Done."))
	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderFileTree(res.Decision.TargetDir, res.Files))
	return nil
}
