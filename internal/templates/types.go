// Package templates provides the registry of project templates create-app can
// scaffold from.
package templates

import "github.com/charmbracelet/lipgloss"

// Template describes one registered project starter.
type Template struct {
	// Name is the unique, case-sensitive key used for --template matching and
	// for locating the template-<name> directory.
	Name string

	// Display is the human label shown in the select prompt. Optional.
	Display string

	// Color tints the label in the select prompt. Cosmetic only.
	Color lipgloss.Color

	// Description is shown by the templates command.
	Description string
}

// Label returns Display, falling back to Name.
func (t Template) Label() string {
	if t.Display != "" {
		return t.Display
	}
	return t.Name
}
