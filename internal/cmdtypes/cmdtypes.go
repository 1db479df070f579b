// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"os"

	"github.com/createapp/cli/internal/answers"
	"github.com/createapp/cli/internal/config"
	oerrors "github.com/createapp/cli/internal/errors"
	"github.com/createapp/cli/internal/templates"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file. Never nil after PersistentPreRunE.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// TemplatesDir is the resolved templates directory. Empty selects the
	// built-in templates.
	TemplatesDir string

	Verbose bool

	// Prompter asks interactive questions. Nil selects the terminal prompter.
	Prompter answers.Prompter

	// Cwd overrides the working directory used to resolve target paths.
	Cwd string
}

// Templates returns the template registry selected by TemplatesDir.
func (g *GlobalConfig) Templates() (*templates.Registry, error) {
	if g.TemplatesDir == "" {
		return templates.Builtin(), nil
	}
	return templates.FromDir(g.TemplatesDir)
}

// WorkingDir returns Cwd, falling back to the process working directory.
func (g *GlobalConfig) WorkingDir() (string, error) {
	if g.Cwd != "" {
		return g.Cwd, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", oerrors.NewFilesystemError("getting working directory", ".", err)
	}
	return wd, nil
}

// PromptUI returns Prompter, falling back to the terminal prompter.
func (g *GlobalConfig) PromptUI() answers.Prompter {
	if g.Prompter != nil {
		return g.Prompter
	}
	return answers.NewHuhPrompter(false)
}
