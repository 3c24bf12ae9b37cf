package tui

import "io"

// Theme captures the prefixes applied to prompts and printed messages. Keep
// minimal to avoid coupling view code to ANSI specifics.
type Theme struct {
	ErrorPrefix string
	EmptyValue  string
	NoneChoice  string
}

// DefaultTheme is applied when no Theme option is given.
var DefaultTheme = Theme{
	ErrorPrefix: "  ! ",
	EmptyValue:  "(empty)",
	NoneChoice:  "(none)",
}

// Option configures the renderer and sessions built from it.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by sessions.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets where the default driver prints informational messages.
func WithOutput(out io.Writer) Option {
	return func(r *Renderer) {
		if out != nil {
			r.out = out
		}
	}
}

// WithTheme overrides the non-empty entries of DefaultTheme.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		if theme.ErrorPrefix != "" {
			r.theme.ErrorPrefix = theme.ErrorPrefix
		}
		if theme.EmptyValue != "" {
			r.theme.EmptyValue = theme.EmptyValue
		}
		if theme.NoneChoice != "" {
			r.theme.NoneChoice = theme.NoneChoice
		}
	}
}

// WithConfirmSubmit asks for confirmation before every submit attempt.
func WithConfirmSubmit(confirm bool) Option {
	return func(r *Renderer) {
		r.confirmSubmit = confirm
	}
}
