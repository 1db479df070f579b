package templates

import (
	"embed"

	"github.com/createapp/cli/internal/output"
)

// The all: prefix keeps files starting with "_" (such as _gitignore) in the
// embedded tree.
//
//go:embed all:template-minimal all:template-vue-ts all:template-vue-a
var builtinFS embed.FS

// builtinTemplates is the registration order used for the select prompt.
var builtinTemplates = []Template{
	{
		Name:        "minimal",
		Display:     "Minimal (vanilla Vite)",
		Color:       output.ColorYellow,
		Description: "Bare Vite project with a single entry script",
	},
	{
		Name:        "vue-ts",
		Display:     "Vue + TypeScript",
		Color:       output.ColorBlue,
		Description: "Vue 3, vue-router, UnoCSS and auto-imports in TypeScript",
	},
	{
		Name:        "vue-a",
		Display:     "Vue (JavaScript)",
		Color:       output.ColorGreen,
		Description: "Vue 3, vue-router and UnoCSS with the tailwind-compat reset",
	},
}
