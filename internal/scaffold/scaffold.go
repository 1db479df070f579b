package scaffold

import (
	"context"
	"errors"

	"github.com/createapp/cli/internal/answers"
	oerrors "github.com/createapp/cli/internal/errors"
	"github.com/createapp/cli/internal/output"
	"github.com/createapp/cli/internal/targetdir"
	"github.com/createapp/cli/internal/templates"
)

// State is a stage of a scaffold run.
type State int

const (
	CollectingAnswers State = iota
	PreparingTarget
	Copying
	WritingManifest
	Done
	Cancelled
	Failed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case CollectingAnswers:
		return "collecting-answers"
	case PreparingTarget:
		return "preparing-target"
	case Copying:
		return "copying"
	case WritingManifest:
		return "writing-manifest"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request carries the command-line answers for one run.
type Request struct {
	TargetDir string
	Template  string
}

// Result describes how a run ended.
type Result struct {
	// State is Done, Cancelled, or Failed.
	State State

	// FailedIn is the state that was active when the run failed.
	FailedIn State

	// Decision is the resolved answer set. Zero when answers were not
	// collected.
	Decision answers.Decision

	// Files lists the target-relative paths written, manifest last.
	Files []string
}

// Scaffolder runs the scaffold state machine.
type Scaffolder struct {
	resolver *answers.Resolver
	registry *templates.Registry
	rename   Renamer
}

// New creates a Scaffolder copying from registry with DefaultRenames applied.
func New(resolver *answers.Resolver, registry *templates.Registry) *Scaffolder {
	return &Scaffolder{
		resolver: resolver,
		registry: registry,
		rename:   DefaultRenames.Renamer(),
	}
}

// Run resolves answers for req and materializes the chosen template. The
// returned Result is never nil. Partial output is left in place on failure.
func (s *Scaffolder) Run(ctx context.Context, req Request) (*Result, error) {
	res := &Result{State: CollectingAnswers}
	output.Debug("scaffold started", "state", res.State)

	d, err := s.resolver.Resolve(ctx, answers.Args{TargetDir: req.TargetDir, Template: req.Template})
	if err != nil {
		if errors.Is(err, oerrors.ErrCancelled) {
			res.advance(Cancelled)
			return res, err
		}
		return res, res.fail(err)
	}
	res.Decision = d

	res.advance(PreparingTarget)
	src, err := s.registry.Source(d.Template)
	if err != nil {
		return res, res.fail(err)
	}
	if d.Overwrite {
		if err := targetdir.Clear(d.Root); err != nil {
			return res, res.fail(err)
		}
	}
	if err := targetdir.EnsureExists(d.Root); err != nil {
		return res, res.fail(err)
	}

	res.advance(Copying)
	files, err := CopyTree(src, d.Root, s.rename, isManifest)
	res.Files = files
	if err != nil {
		return res, res.fail(err)
	}

	res.advance(WritingManifest)
	if err := RewriteManifest(src, d.Root, d.PackageName); err != nil {
		return res, res.fail(err)
	}
	res.Files = append(res.Files, ManifestFile)

	res.advance(Done)
	return res, nil
}

func (r *Result) advance(next State) {
	output.Debug("scaffold state changed", "from", r.State, "to", next)
	r.State = next
}

func (r *Result) fail(err error) error {
	r.FailedIn = r.State
	r.advance(Failed)
	return err
}

func isManifest(rel string) bool {
	return rel == ManifestFile
}
