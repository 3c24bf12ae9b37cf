package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C) or declined
	// the submit confirmation.
	ErrAborted = errors.New("tui: aborted")
	// ErrInvalidChoice is returned when a select prompt yields an index outside
	// the offered choices.
	ErrInvalidChoice = errors.New("tui: invalid choice")
)
