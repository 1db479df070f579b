// Package project derives and validates project identity from user input:
// the target directory the user asked for, the project name implied by it,
// and the package name written into the manifest.
package project
