package templates

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	oerrors "github.com/createapp/cli/internal/errors"
	"github.com/createapp/cli/internal/output"
)

// dirPrefix is prepended to a template name to form its directory.
const dirPrefix = "template-"

// Registry holds the templates available to one invocation.
type Registry struct {
	fsys      fs.FS
	templates []Template
}

// NewRegistry creates a registry over fsys, which must contain one
// template-<name> directory per entry of templates.
func NewRegistry(fsys fs.FS, templates []Template) *Registry {
	return &Registry{fsys: fsys, templates: append([]Template(nil), templates...)}
}

// Builtin returns the registry of templates embedded in the binary.
func Builtin() *Registry {
	return NewRegistry(builtinFS, builtinTemplates)
}

// FromDir returns a registry rooted at an on-disk templates directory.
// Built-in descriptors found there keep their order; any other template-*
// directories follow in lexical order.
func FromDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("templates directory is not readable: %v", err), dir,
			"Set templatesDir (or --templates-dir) to a directory containing template-<name> folders.")
	}

	present := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), dirPrefix) && len(e.Name()) > len(dirPrefix) {
			present[strings.TrimPrefix(e.Name(), dirPrefix)] = true
		}
	}
	if len(present) == 0 {
		return nil, oerrors.NewNotFoundError("no template-<name> directories found", dir, "")
	}

	var list []Template
	for _, t := range builtinTemplates {
		if present[t.Name] {
			list = append(list, t)
			delete(present, t.Name)
		}
	}

	extra := make([]string, 0, len(present))
	for name := range present {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	for _, name := range extra {
		list = append(list, Template{Name: name, Color: output.ColorMagenta})
	}

	output.Debug("loaded templates directory", "dir", dir, "templates", len(list))
	return NewRegistry(os.DirFS(dir), list), nil
}

// List returns the registered templates in registration order.
func (r *Registry) List() []Template {
	return append([]Template(nil), r.templates...)
}

// Names returns all template names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.templates))
	for i, t := range r.templates {
		names[i] = t.Name
	}
	return names
}

// Resolve looks up a template by exact name.
func (r *Registry) Resolve(name string) (Template, bool) {
	for _, t := range r.templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// SourceDir returns the directory holding t's files, relative to the
// registry root.
func SourceDir(t Template) string {
	return dirPrefix + t.Name
}

// Source returns t's file tree.
func (r *Registry) Source(t Template) (fs.FS, error) {
	dir := SourceDir(t)
	info, err := fs.Stat(r.fsys, dir)
	if err != nil || !info.IsDir() {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("template %q has no %s directory", t.Name, dir), dir, "")
	}
	return fs.Sub(r.fsys, dir)
}
