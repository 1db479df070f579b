package scaffold

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/otiai10/copy"

	oerrors "github.com/createapp/cli/internal/errors"
	"github.com/createapp/cli/internal/output"
)

// Renamer maps a slash-separated source path, relative to the template root,
// to its target path. Only the base name of the result is used; directories
// are renamed where they are visited.
type Renamer func(rel string) string

// RenameTable renames entries by base name.
type RenameTable map[string]string

// DefaultRenames restores files that cannot ship under their real name.
var DefaultRenames = RenameTable{
	"_gitignore": ".gitignore",
}

// Renamer returns a Renamer applying t at every level of the tree.
func (t RenameTable) Renamer() Renamer {
	return func(rel string) string {
		dir, base := path.Split(rel)
		if to, ok := t[base]; ok {
			return dir + to
		}
		return rel
	}
}

// CopyTree copies every regular file of src into dst, creating directories
// as needed. Paths for which exclude returns true are skipped, as are
// symlinks and special files. It returns the slash-separated target paths
// copied.
//
// Copying stops at the first error; files already written stay in place.
func CopyTree(src fs.FS, dst string, rename Renamer, exclude func(rel string) bool) ([]string, error) {
	if rename == nil {
		rename = func(rel string) string { return rel }
	}
	c := &treeCopier{dst: dst, rename: rename, exclude: exclude}

	err := copy.Copy(".", dst, copy.Options{
		FS:                src,
		Skip:              c.skip,
		RenameDestination: c.renameDestination,
		OnSymlink:         func(string) copy.SymlinkAction { return copy.Skip },
		PermissionControl: controlPermission,
	})
	if err != nil {
		return c.written, oerrors.NewFilesystemError("copying template", dst, err)
	}
	return c.written, nil
}

type treeCopier struct {
	dst     string
	rename  Renamer
	exclude func(rel string) bool
	written []string
}

// skip decides per entry before it is copied. Symlinks are never followed,
// so a cycle in an on-disk template cannot recurse.
func (c *treeCopier) skip(info os.FileInfo, src, dest string) (bool, error) {
	rel := filepath.ToSlash(src)
	if c.exclude != nil && c.exclude(rel) {
		output.Debug("skipping excluded file", "path", rel)
		return true, nil
	}

	switch {
	case info.IsDir():
		return false, nil
	case info.Mode().IsRegular():
		target, err := c.renameDestination(src, dest)
		if err != nil {
			return true, err
		}
		to, err := filepath.Rel(c.dst, target)
		if err != nil {
			return true, err
		}
		c.written = append(c.written, filepath.ToSlash(to))
		output.Debug("copying file", "from", rel, "to", filepath.ToSlash(to))
		return false, nil
	default:
		output.Debug("skipping special file", "path", rel, "mode", info.Mode().String())
		return true, nil
	}
}

func (c *treeCopier) renameDestination(src, dest string) (string, error) {
	if src == "." {
		return dest, nil
	}
	base := path.Base(c.rename(filepath.ToSlash(src)))
	return filepath.Join(filepath.Dir(dest), base), nil
}

// controlPermission creates directories writable and gives files 0644, or
// 0755 when the source has any execute bit. Embedded files report 0444, so
// source permission bits are not copied as-is.
func controlPermission(info fs.FileInfo, dest string) (func(*error), error) {
	if info.IsDir() {
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return func(*error) {}, err
		}
		return func(*error) {}, nil
	}
	perm := filePerm(info.Mode())
	return func(reported *error) {
		if err := os.Chmod(dest, perm); err != nil && *reported == nil {
			*reported = err
		}
	}, nil
}

func filePerm(mode fs.FileMode) fs.FileMode {
	if mode.Perm()&0o111 != 0 {
		return 0o755
	}
	return 0o644
}
