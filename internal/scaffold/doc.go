// Package scaffold materializes a resolved template into the target
// directory: it prepares the directory, copies the template tree with file
// renames applied, and writes the rewritten package.json last.
package scaffold
