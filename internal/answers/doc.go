// Package answers collects the decisions a scaffold run needs: where to
// create the project, what to call its package, which template to use, and
// whether an existing directory may be cleared.
//
// Questions are evaluated in a fixed order. Each one is skipped when the
// command line already answered it, so a fully specified invocation never
// prompts.
package answers
