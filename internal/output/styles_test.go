package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Done.")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Done.")
}

func TestFormatCross(t *testing.T) {
	out := FormatCross("Operation cancelled")
	assert.Contains(t, out, "✖")
	assert.Contains(t, out, "Operation cancelled")
}

func TestColorize(t *testing.T) {
	assert.Equal(t, "plain", Colorize("", "plain"))
	assert.Contains(t, Colorize(ColorGreen, "vue-ts"), "vue-ts")
}

func TestStyleColors(t *testing.T) {
	assert.Equal(t, lipgloss.TerminalColor(ColorCyan), StyleNoun.GetForeground())
	assert.True(t, StyleBold.GetBold())
	assert.True(t, StyleDim.GetFaint())
}
