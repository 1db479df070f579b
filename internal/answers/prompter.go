package answers

import "context"

// InputQuestion asks for free text.
type InputQuestion struct {
	Message string

	// Default is returned when the user submits an empty answer.
	Default string

	// Validate, when set, is applied to the answer after Default has been
	// substituted. A failing answer is asked again.
	Validate func(string) error
}

// ConfirmQuestion asks a yes/no question. The default answer is no.
type ConfirmQuestion struct {
	Message string
}

// SelectQuestion asks the user to pick one of Options.
type SelectQuestion struct {
	Message string
	Options []string

	// Default is the index preselected in Options.
	Default int
}

// Prompter renders questions and returns validated answers. Implementations
// return an error wrapping errors.ErrCancelled when the user aborts.
type Prompter interface {
	Input(ctx context.Context, q InputQuestion) (string, error)
	Confirm(ctx context.Context, q ConfirmQuestion) (bool, error)
	Select(ctx context.Context, q SelectQuestion) (int, error)
}

// applyDefault substitutes def for an empty answer.
func applyDefault(answer, def string) string {
	if answer == "" {
		return def
	}
	return answer
}
