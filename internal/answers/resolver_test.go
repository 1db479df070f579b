package answers_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/createapp/cli/internal/answers"
	oerrors "github.com/createapp/cli/internal/errors"
	"github.com/createapp/cli/internal/output"
	"github.com/createapp/cli/internal/templates"
	"github.com/createapp/cli/internal/testutil"
)

func testRegistry() *templates.Registry {
	fsys := fstest.MapFS{
		"template-minimal/package.json": {Data: []byte(`{"name":"x"}`)},
		"template-vue-ts/package.json":  {Data: []byte(`{"name":"x"}`)},
	}
	return templates.NewRegistry(fsys, []templates.Template{
		{Name: "minimal", Display: "Minimal"},
		{Name: "vue-ts", Display: "Vue + TypeScript"},
	})
}

func TestResolve_FullySpecifiedDoesNotPrompt(t *testing.T) {
	cwd := t.TempDir()
	p := &testutil.Prompter{}

	d, err := answers.NewResolver(p, testRegistry(), cwd).
		Resolve(context.Background(), answers.Args{TargetDir: "my-app", Template: "minimal"})
	require.NoError(t, err)

	assert.Empty(t, p.Asked)
	assert.Equal(t, "my-app", d.TargetDir)
	assert.Equal(t, filepath.Join(cwd, "my-app"), d.Root)
	assert.Equal(t, "my-app", d.ProjectName)
	assert.Equal(t, "my-app", d.PackageName)
	assert.Equal(t, "minimal", d.Template.Name)
	assert.False(t, d.Overwrite)
}

func TestResolve_ProjectNamePrompt(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{name: "explicit answer", answer: "demo", want: "demo"},
		{name: "empty uses default", answer: "", want: "my-project"},
		{name: "trailing slashes trimmed", answer: " demo// ", want: "demo"},
		{name: "only slashes uses default", answer: "///", want: "my-project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &testutil.Prompter{Inputs: []string{tt.answer}}

			d, err := answers.NewResolver(p, testRegistry(), t.TempDir()).
				Resolve(context.Background(), answers.Args{Template: "minimal"})
			require.NoError(t, err)

			assert.Equal(t, []string{"Project name:"}, p.Asked)
			assert.Equal(t, tt.want, d.TargetDir)
			assert.Equal(t, tt.want, d.PackageName)
		})
	}
}

func TestResolve_CurrentDirectoryUsesCwdName(t *testing.T) {
	cwd := filepath.Join(t.TempDir(), "cool-app")
	require.NoError(t, os.MkdirAll(cwd, 0o755))
	p := &testutil.Prompter{}

	d, err := answers.NewResolver(p, testRegistry(), cwd).
		Resolve(context.Background(), answers.Args{TargetDir: ".", Template: "minimal"})
	require.NoError(t, err)

	assert.Empty(t, p.Asked)
	assert.Equal(t, ".", d.TargetDir)
	assert.Equal(t, cwd, d.Root)
	assert.Equal(t, "cool-app", d.ProjectName)
	assert.Equal(t, "cool-app", d.PackageName)
}

func TestResolve_OverwriteDeclinedCancels(t *testing.T) {
	cwd := t.TempDir()
	testutil.WriteFile(t, cwd, "existing/keep.txt", "keep")
	p := &testutil.Prompter{Confirms: []bool{false}}

	_, err := answers.NewResolver(p, testRegistry(), cwd).
		Resolve(context.Background(), answers.Args{TargetDir: "existing"})
	require.Error(t, err)

	assert.ErrorIs(t, err, oerrors.ErrCancelled)
	assert.Equal(t, oerrors.ExitCancelled, oerrors.ExitCodeFromError(err))
	// The template question is never reached.
	assert.Equal(t, []string{`Target directory "existing" is not empty. Remove existing files and continue?`}, p.Asked)
}

func TestResolve_OverwriteAccepted(t *testing.T) {
	cwd := t.TempDir()
	testutil.WriteFile(t, cwd, "existing/keep.txt", "keep")
	p := &testutil.Prompter{Confirms: []bool{true}}

	d, err := answers.NewResolver(p, testRegistry(), cwd).
		Resolve(context.Background(), answers.Args{TargetDir: "existing", Template: "vue-ts"})
	require.NoError(t, err)

	assert.True(t, d.Overwrite)
	assert.Equal(t, "vue-ts", d.Template.Name)
}

func TestResolve_OverwriteMessageForCurrentDirectory(t *testing.T) {
	cwd := t.TempDir()
	testutil.WriteFile(t, cwd, "file.txt", "x")
	p := &testutil.Prompter{Confirms: []bool{true}}

	_, err := answers.NewResolver(p, testRegistry(), cwd).
		Resolve(context.Background(), answers.Args{TargetDir: ".", Template: "minimal"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Current directory is not empty. Remove existing files and continue?"}, p.Asked)
}

func TestResolve_GitOnlyDirectoryIsNotConfirmed(t *testing.T) {
	cwd := t.TempDir()
	testutil.WriteFile(t, cwd, "repo/.git/HEAD", "ref: refs/heads/main")
	p := &testutil.Prompter{}

	d, err := answers.NewResolver(p, testRegistry(), cwd).
		Resolve(context.Background(), answers.Args{TargetDir: "repo", Template: "minimal"})
	require.NoError(t, err)

	assert.Empty(t, p.Asked)
	assert.False(t, d.Overwrite)
}

func TestResolve_PackageNamePrompt(t *testing.T) {
	p := &testutil.Prompter{Inputs: []string{""}}

	d, err := answers.NewResolver(p, testRegistry(), t.TempDir()).
		Resolve(context.Background(), answers.Args{TargetDir: "My App", Template: "minimal"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Package name:"}, p.Asked)
	assert.Equal(t, "my-app", d.PackageName)
	assert.Equal(t, "My App", d.ProjectName)
}

func TestResolve_PackageNameReaskedOnInvalidAnswer(t *testing.T) {
	p := &testutil.Prompter{Inputs: []string{"Bad Name", "good-name"}}

	d, err := answers.NewResolver(p, testRegistry(), t.TempDir()).
		Resolve(context.Background(), answers.Args{TargetDir: "My App", Template: "minimal"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Bad Name"}, p.Rejected)
	assert.Equal(t, "good-name", d.PackageName)
}

func TestResolve_ScopedProjectNameKeptVerbatim(t *testing.T) {
	p := &testutil.Prompter{}

	d, err := answers.NewResolver(p, testRegistry(), t.TempDir()).
		Resolve(context.Background(), answers.Args{TargetDir: "@acme/app", Template: "minimal"})
	require.NoError(t, err)

	assert.Empty(t, p.Asked)
	assert.Equal(t, "@acme/app", d.ProjectName)
	assert.Equal(t, "@acme/app", d.PackageName)
}

func TestResolve_TemplateSelect(t *testing.T) {
	tests := []struct {
		name     string
		template string
		message  string
	}{
		{name: "no template given", template: "", message: "Select a template:"},
		{name: "unknown template", template: "react", message: `"react" isn't a valid template. Please choose from below: `},
		{name: "case mismatch", template: "Minimal", message: `"Minimal" isn't a valid template. Please choose from below: `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &testutil.Prompter{Selects: []int{1}}

			d, err := answers.NewResolver(p, testRegistry(), t.TempDir()).
				Resolve(context.Background(), answers.Args{TargetDir: "app", Template: tt.template})
			require.NoError(t, err)

			assert.Equal(t, []string{tt.message}, p.Asked)
			require.Len(t, p.Options, 2)
			assert.Contains(t, p.Options[0], "Minimal")
			assert.Contains(t, p.Options[1], "Vue + TypeScript")
			assert.Equal(t, "vue-ts", d.Template.Name)
		})
	}
}

func TestResolve_PromptOrder(t *testing.T) {
	cwd := t.TempDir()
	testutil.WriteFile(t, cwd, "Big Thing/old.txt", "old")
	p := &testutil.Prompter{
		Inputs:   []string{"Big Thing", ""},
		Confirms: []bool{true},
		Selects:  []int{0},
	}

	d, err := answers.NewResolver(p, testRegistry(), cwd).
		Resolve(context.Background(), answers.Args{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Project name:",
		`Target directory "Big Thing" is not empty. Remove existing files and continue?`,
		"Package name:",
		"Select a template:",
	}, p.Asked)
	assert.Equal(t, "big-thing", d.PackageName)
	assert.Equal(t, "minimal", d.Template.Name)
	assert.True(t, d.Overwrite)
}

func TestResolve_AbortedPromptCancels(t *testing.T) {
	p := &testutil.Prompter{}

	_, err := answers.NewResolver(p, testRegistry(), t.TempDir()).
		Resolve(context.Background(), answers.Args{})

	assert.ErrorIs(t, err, oerrors.ErrCancelled)
}

func TestResolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &testutil.Prompter{}

	_, err := answers.NewResolver(p, testRegistry(), t.TempDir()).
		Resolve(ctx, answers.Args{TargetDir: "app", Template: "minimal"})

	assert.ErrorIs(t, err, oerrors.ErrCancelled)
	assert.Empty(t, p.Asked)
}

func TestResolve_EmptyRegistry(t *testing.T) {
	reg := templates.NewRegistry(fstest.MapFS{}, nil)

	_, err := answers.NewResolver(&testutil.Prompter{}, reg, t.TempDir()).
		Resolve(context.Background(), answers.Args{TargetDir: "app"})

	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestResolve_TargetIsFile(t *testing.T) {
	cwd := t.TempDir()
	testutil.WriteFile(t, cwd, "taken", "file")

	_, err := answers.NewResolver(&testutil.Prompter{}, testRegistry(), cwd).
		Resolve(context.Background(), answers.Args{TargetDir: "taken", Template: "minimal"})

	assert.ErrorIs(t, err, oerrors.ErrFilesystem)
}

// unvalidatedPrompter hands back scripted input without running Validate.
type unvalidatedPrompter struct {
	testutil.Prompter
}

func (p *unvalidatedPrompter) Input(_ context.Context, q answers.InputQuestion) (string, error) {
	p.Asked = append(p.Asked, q.Message)
	answer := p.Inputs[0]
	p.Inputs = p.Inputs[1:]
	return answer, nil
}

func TestResolve_PackageNameRecheckedAfterPrompt(t *testing.T) {
	p := &unvalidatedPrompter{Prompter: testutil.Prompter{Inputs: []string{"Not Valid"}}}

	_, err := answers.NewResolver(p, testRegistry(), t.TempDir()).
		Resolve(context.Background(), answers.Args{TargetDir: "Big App", Template: "minimal"})
	require.Error(t, err)

	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Equal(t, []string{"Package name:"}, p.Asked)
}

func TestResolve_UnknownTemplateWarns(t *testing.T) {
	var buf bytes.Buffer
	output.SetupLoggingTo(&buf, output.LogConfig{})
	t.Cleanup(func() { output.SetupLoggingTo(os.Stderr, output.LogConfig{}) })

	p := &testutil.Prompter{Selects: []int{0}}
	_, err := answers.NewResolver(p, testRegistry(), t.TempDir()).
		Resolve(context.Background(), answers.Args{TargetDir: "app", Template: "react"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "unknown template")
	assert.Contains(t, buf.String(), "react")
	assert.Contains(t, buf.String(), "minimal, vue-ts")
}

func TestResolve_DotSlashTargetKeepsDirectoryName(t *testing.T) {
	cwd := t.TempDir()
	p := &testutil.Prompter{}

	d, err := answers.NewResolver(p, testRegistry(), cwd).
		Resolve(context.Background(), answers.Args{TargetDir: "./templates", Template: "minimal"})
	require.NoError(t, err)

	assert.Empty(t, p.Asked)
	assert.Equal(t, "./templates", d.TargetDir)
	assert.Equal(t, filepath.Join(cwd, "templates"), d.Root)
	assert.Equal(t, "templates", d.PackageName)
}
