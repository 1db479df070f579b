package answers

import "github.com/createapp/cli/internal/templates"

// Decision is the resolved answer set for one scaffold run.
type Decision struct {
	// TargetDir is the formatted target directory as given by the user.
	TargetDir string

	// Root is the absolute path TargetDir resolves to.
	Root string

	// ProjectName is derived from TargetDir.
	ProjectName string

	// PackageName is written to the manifest. Always a valid package name.
	PackageName string

	// Template is the template to copy.
	Template templates.Template

	// Overwrite is true when the user agreed to clear a non-empty target.
	Overwrite bool
}
