package answers

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	oerrors "github.com/createapp/cli/internal/errors"
	"github.com/createapp/cli/internal/output"
)

// HuhPrompter asks questions on the terminal using huh forms.
type HuhPrompter struct {
	interactive bool
	accessible  bool
}

// NewHuhPrompter creates a terminal prompter. When stdin/stdout are not a
// terminal every question fails with a cancellation error instead of blocking.
func NewHuhPrompter(accessible bool) *HuhPrompter {
	return &HuhPrompter{
		interactive: output.IsTTY(),
		accessible:  accessible,
	}
}

// Input implements Prompter.
func (p *HuhPrompter) Input(ctx context.Context, q InputQuestion) (string, error) {
	if !p.interactive {
		return "", noTerminal(q.Message)
	}

	var value string
	field := huh.NewInput().
		Title(q.Message).
		Placeholder(q.Default).
		Value(&value)
	if q.Validate != nil {
		field = field.Validate(func(v string) error {
			return q.Validate(applyDefault(v, q.Default))
		})
	}

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return applyDefault(value, q.Default), nil
}

// Confirm implements Prompter.
func (p *HuhPrompter) Confirm(ctx context.Context, q ConfirmQuestion) (bool, error) {
	if !p.interactive {
		return false, noTerminal(q.Message)
	}

	var value bool
	field := huh.NewConfirm().
		Title(q.Message).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := p.run(ctx, field); err != nil {
		return false, err
	}
	return value, nil
}

// Select implements Prompter.
func (p *HuhPrompter) Select(ctx context.Context, q SelectQuestion) (int, error) {
	if !p.interactive {
		return 0, noTerminal(q.Message)
	}

	opts := make([]huh.Option[int], len(q.Options))
	for i, label := range q.Options {
		opts[i] = huh.NewOption(label, i)
	}

	value := q.Default
	field := huh.NewSelect[int]().
		Title(q.Message).
		Options(opts...).
		Value(&value)

	if err := p.run(ctx, field); err != nil {
		return 0, err
	}
	return value, nil
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithAccessible(p.accessible)

	err := form.RunWithContext(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return oerrors.ErrCancelled
	default:
		return fmt.Errorf("prompt failed: %w", err)
	}
}

func noTerminal(message string) error {
	return &oerrors.DetailError{
		Type:    "input required",
		Message: fmt.Sprintf("cannot ask %q without an interactive terminal", message),
		Hint:    "Pass the target directory as an argument and choose a template with --template.",
		Cause:   oerrors.ErrCancelled,
	}
}
