package testutil

import (
	"context"
	"fmt"

	"github.com/createapp/cli/internal/answers"
	oerrors "github.com/createapp/cli/internal/errors"
)

// Prompter is a scripted answers.Prompter. Each method consumes the next
// answer of its kind; running out of answers behaves like the user aborting.
// Input answers that fail validation are recorded and the next one is used,
// mirroring a terminal prompter asking again.
type Prompter struct {
	Inputs   []string
	Confirms []bool
	Selects  []int

	// Asked records every question message in the order it was asked.
	Asked []string

	// Rejected records input answers that failed validation.
	Rejected []string

	// Options records the choices offered by the last Select call.
	Options []string
}

var _ answers.Prompter = (*Prompter)(nil)

// Input implements answers.Prompter.
func (p *Prompter) Input(ctx context.Context, q answers.InputQuestion) (string, error) {
	p.Asked = append(p.Asked, q.Message)
	for {
		if ctx.Err() != nil || len(p.Inputs) == 0 {
			return "", exhausted(q.Message)
		}
		answer := p.Inputs[0]
		p.Inputs = p.Inputs[1:]
		if answer == "" {
			answer = q.Default
		}
		if q.Validate != nil {
			if err := q.Validate(answer); err != nil {
				p.Rejected = append(p.Rejected, answer)
				continue
			}
		}
		return answer, nil
	}
}

// Confirm implements answers.Prompter.
func (p *Prompter) Confirm(ctx context.Context, q answers.ConfirmQuestion) (bool, error) {
	p.Asked = append(p.Asked, q.Message)
	if ctx.Err() != nil || len(p.Confirms) == 0 {
		return false, exhausted(q.Message)
	}
	answer := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return answer, nil
}

// Select implements answers.Prompter.
func (p *Prompter) Select(ctx context.Context, q answers.SelectQuestion) (int, error) {
	p.Asked = append(p.Asked, q.Message)
	p.Options = append([]string(nil), q.Options...)
	if ctx.Err() != nil || len(p.Selects) == 0 {
		return 0, exhausted(q.Message)
	}
	answer := p.Selects[0]
	p.Selects = p.Selects[1:]
	return answer, nil
}

func exhausted(message string) error {
	return fmt.Errorf("no scripted answer for %q: %w", message, oerrors.ErrCancelled)
}
