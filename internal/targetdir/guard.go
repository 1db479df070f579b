// Package targetdir inspects and prepares the directory a project is
// scaffolded into.
package targetdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/createapp/cli/internal/errors"
	"github.com/createapp/cli/internal/output"
)

// VCSDir is the version-control metadata directory that is never removed and
// does not count toward emptiness.
const VCSDir = ".git"

// IsEmpty reports whether dir has no entries other than VCSDir.
func IsEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, oerrors.NewFilesystemError("reading directory", dir, err)
	}
	switch len(entries) {
	case 0:
		return true, nil
	case 1:
		return entries[0].Name() == VCSDir, nil
	default:
		return false, nil
	}
}

// NeedsConfirmation reports whether dir exists with content that would be
// destroyed by clearing it.
func NeedsConfirmation(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, oerrors.NewFilesystemError("checking target directory", dir, err)
	}
	if !info.IsDir() {
		return false, oerrors.NewFilesystemError("checking target directory", dir,
			fmt.Errorf("%s is not a directory", dir))
	}

	empty, err := IsEmpty(dir)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Clear removes every entry of dir except VCSDir. A missing dir, or entries
// removed by someone else in the meantime, are not errors.
func Clear(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return oerrors.NewFilesystemError("reading directory", dir, err)
	}

	for _, entry := range entries {
		if entry.Name() == VCSDir {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		output.Debug("removing", "path", path)
		// RemoveAll returns nil when path is already gone.
		if err := os.RemoveAll(path); err != nil {
			return oerrors.NewFilesystemError("removing", path, err)
		}
	}
	return nil
}

// EnsureExists creates dir and its parents when absent.
func EnsureExists(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return oerrors.NewFilesystemError("creating directory", dir, err)
	}
	return nil
}
