package answers

import (
	"context"
	"fmt"
	"strings"

	oerrors "github.com/createapp/cli/internal/errors"
	"github.com/createapp/cli/internal/output"
	"github.com/createapp/cli/internal/project"
	"github.com/createapp/cli/internal/targetdir"
	"github.com/createapp/cli/internal/templates"
)

// Args are the answers supplied on the command line.
type Args struct {
	// TargetDir is the raw positional argument, possibly empty.
	TargetDir string

	// Template is the raw --template value, possibly empty.
	Template string
}

// Resolver turns command-line arguments into a Decision, prompting for
// whatever is missing.
type Resolver struct {
	prompter Prompter
	registry *templates.Registry
	cwd      string
}

// NewResolver creates a Resolver. cwd is used to resolve relative target
// directories and to name a project created in ".".
func NewResolver(p Prompter, reg *templates.Registry, cwd string) *Resolver {
	return &Resolver{prompter: p, registry: reg, cwd: cwd}
}

// session holds the partial answers of one Resolve call.
type session struct {
	args Args
	cwd  string

	targetDir      string
	overwriteAsked bool
	overwrite      bool
	packageName    string
	template       templates.Template
}

func (s *session) root() string {
	return project.TargetRoot(s.cwd, s.targetDir)
}

func (s *session) projectName() string {
	return project.ProjectName(s.targetDir, s.cwd)
}

type question struct {
	name   string
	active func(s *session) (bool, error)
	ask    func(ctx context.Context, s *session) error
}

// Resolve asks the active questions in order and returns the final answers.
// A declined overwrite or an aborted prompt returns errors.ErrCancelled.
func (r *Resolver) Resolve(ctx context.Context, args Args) (Decision, error) {
	if len(r.registry.List()) == 0 {
		return Decision{}, oerrors.NewNotFoundError("no templates are registered", "",
			"Check the templatesDir setting.")
	}

	s := &session{
		args:      args,
		cwd:       r.cwd,
		targetDir: project.FormatTargetDir(args.TargetDir),
	}
	if s.targetDir == "" {
		s.targetDir = project.DefaultTargetDir
	}

	for _, q := range r.questions() {
		if err := ctx.Err(); err != nil {
			return Decision{}, oerrors.ErrCancelled
		}

		ok, err := q.active(s)
		if err != nil {
			return Decision{}, err
		}
		if !ok {
			output.Debug("question skipped", "question", q.name)
			continue
		}

		output.Debug("asking question", "question", q.name)
		if err := q.ask(ctx, s); err != nil {
			return Decision{}, err
		}
	}

	return Decision{
		TargetDir:   s.targetDir,
		Root:        s.root(),
		ProjectName: s.projectName(),
		PackageName: s.packageName,
		Template:    s.template,
		Overwrite:   s.overwrite,
	}, nil
}

func (r *Resolver) questions() []question {
	return []question{
		{
			name: "projectName",
			active: func(s *session) (bool, error) {
				return project.FormatTargetDir(s.args.TargetDir) == "", nil
			},
			ask: func(ctx context.Context, s *session) error {
				answer, err := r.prompter.Input(ctx, InputQuestion{
					Message: "Project name:",
					Default: project.DefaultTargetDir,
				})
				if err != nil {
					return err
				}
				s.targetDir = project.FormatTargetDir(answer)
				if s.targetDir == "" {
					s.targetDir = project.DefaultTargetDir
				}
				return nil
			},
		},
		{
			name: "overwrite",
			active: func(s *session) (bool, error) {
				return targetdir.NeedsConfirmation(s.root())
			},
			ask: func(ctx context.Context, s *session) error {
				ok, err := r.prompter.Confirm(ctx, ConfirmQuestion{
					Message: overwriteMessage(s.targetDir),
				})
				if err != nil {
					return err
				}
				s.overwriteAsked = true
				s.overwrite = ok
				return nil
			},
		},
		{
			name: "overwriteChecker",
			active: func(s *session) (bool, error) {
				return s.overwriteAsked, nil
			},
			ask: func(_ context.Context, s *session) error {
				if !s.overwrite {
					return oerrors.ErrCancelled
				}
				return nil
			},
		},
		{
			name: "packageName",
			active: func(s *session) (bool, error) {
				if project.IsValidName(s.projectName()) {
					s.packageName = s.projectName()
					return false, nil
				}
				return true, nil
			},
			ask: func(ctx context.Context, s *session) error {
				answer, err := r.prompter.Input(ctx, InputQuestion{
					Message:  "Package name:",
					Default:  project.NormalizeName(s.projectName()),
					Validate: validatePackageName,
				})
				if err != nil {
					return err
				}
				if err := validatePackageName(answer); err != nil {
					return err
				}
				s.packageName = answer
				return nil
			},
		},
		{
			name: "template",
			active: func(s *session) (bool, error) {
				if s.args.Template == "" {
					return true, nil
				}
				t, ok := r.registry.Resolve(s.args.Template)
				if !ok {
					output.Warn("unknown template", "name", s.args.Template,
						"available", strings.Join(r.registry.Names(), ", "))
					return true, nil
				}
				s.template = t
				return false, nil
			},
			ask: func(ctx context.Context, s *session) error {
				list := r.registry.List()
				labels := make([]string, len(list))
				for i, t := range list {
					labels[i] = output.Colorize(t.Color, t.Label())
				}

				idx, err := r.prompter.Select(ctx, SelectQuestion{
					Message: templateMessage(s.args.Template),
					Options: labels,
				})
				if err != nil {
					return err
				}
				if idx < 0 || idx >= len(list) {
					return fmt.Errorf("template selection %d out of range", idx)
				}
				s.template = list[idx]
				return nil
			},
		},
	}
}

func overwriteMessage(targetDir string) string {
	subject := "Current directory"
	if targetDir != "." {
		subject = fmt.Sprintf("Target directory %q", targetDir)
	}
	return subject + " is not empty. Remove existing files and continue?"
}

func templateMessage(requested string) string {
	if requested == "" {
		return "Select a template:"
	}
	return fmt.Sprintf("%q isn't a valid template. Please choose from below: ", requested)
}

func validatePackageName(name string) error {
	if project.IsValidName(name) {
		return nil
	}
	return oerrors.NewValidationError(
		fmt.Sprintf("invalid package.json name %q", name),
		"Use lowercase letters, digits, and - . _ ~, optionally scoped as @scope/name.")
}
