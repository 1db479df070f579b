package project

import (
	"path"
	"path/filepath"
	"strings"
)

// FormatTargetDir trims raw and strips any trailing slashes.
// An empty result means no target directory was supplied.
func FormatTargetDir(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// ProjectName returns the project name implied by targetDir. The current
// directory (".") is named after cwd's base name, and an explicit "./"
// prefix is dropped.
func ProjectName(targetDir, cwd string) string {
	if targetDir == "." {
		return filepath.Base(cwd)
	}
	if strings.HasPrefix(targetDir, "./") {
		if cleaned := path.Clean(targetDir); cleaned != "." {
			return cleaned
		}
		return filepath.Base(cwd)
	}
	return targetDir
}

// TargetRoot returns the absolute directory the project is written into.
func TargetRoot(cwd, targetDir string) string {
	if filepath.IsAbs(targetDir) {
		return filepath.Clean(targetDir)
	}
	return filepath.Join(cwd, targetDir)
}
