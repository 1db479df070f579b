package project

import (
	"regexp"
	"strings"
)

// DefaultTargetDir is used when neither the command line nor the prompt
// supplies a target directory.
const DefaultTargetDir = "my-project"

// packageNameRegex is the npm package name grammar: an optional
// "@scope/" segment followed by the name segment.
var packageNameRegex = regexp.MustCompile(`^(?:@[a-z\d\-*~][a-z\d\-*._~]*/)?[a-z\d\-~][a-z\d\-._~]*$`)

var (
	whitespaceRun          = regexp.MustCompile(`[\s\p{Zs}]+`)
	leadingDotOrUnderscore = regexp.MustCompile(`^[._]`)
	invalidRun             = regexp.MustCompile(`[^a-z\d\-~]+`)
)

// IsValidName reports whether name can be used as a manifest package name.
func IsValidName(name string) bool {
	return packageNameRegex.MatchString(name)
}

// NormalizeName converts an arbitrary project name into a valid package name.
// Inputs that normalize to nothing (blank, or a lone "." or "_") yield
// DefaultTargetDir.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = leadingDotOrUnderscore.ReplaceAllString(s, "")
	s = invalidRun.ReplaceAllString(s, "-")
	if s == "" {
		return DefaultTargetDir
	}
	return s
}
