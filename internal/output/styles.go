package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals elsewhere in the CLI.
var (
	// ColorCyan is used for identifiable nouns: directories, template names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for Vue-flavoured templates.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for plain JavaScript templates.
	ColorYellow = lipgloss.Color("220")

	// ColorBlue is used for TypeScript templates.
	ColorBlue = lipgloss.Color("39")

	// ColorMagenta is used for opinionated starter templates.
	ColorMagenta = lipgloss.Color("213")

	// ColorBoldRed is used for the cancellation cross (✖).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (paths, template names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles the file tree root.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles secondary text such as template descriptions.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// Colorize renders s in the given color. An empty color leaves s unstyled.
func Colorize(color lipgloss.Color, s string) string {
	if color == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(color).Render(s)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message for stderr output.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorBoldRed).Render("✖")
	return cross + " " + msg
}
