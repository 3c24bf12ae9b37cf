package printer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Printer writes coloured status messages for the CLI. Standard output gets
// success and info lines, errors go to the error writer.
type Printer struct {
	out    io.Writer
	errOut io.Writer

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
}

// New creates a printer. Colour is disabled when NO_COLOR is set.
func New(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	p := &Printer{
		out:    out,
		errOut: errOut,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed, color.Bold),
		cyan:   color.New(color.FgCyan),
	}
	if os.Getenv("NO_COLOR") != "" {
		p.DisableColor()
	} else {
		p.EnableColor()
	}
	return p
}

// DisableColor turns off ANSI sequences for this printer.
func (p *Printer) DisableColor() {
	for _, c := range []*color.Color{p.green, p.yellow, p.red, p.cyan} {
		c.DisableColor()
	}
}

// EnableColor forces ANSI sequences even when not attached to a TTY.
func (p *Printer) EnableColor() {
	for _, c := range []*color.Color{p.green, p.yellow, p.red, p.cyan} {
		c.EnableColor()
	}
}

// Success prints a message in green with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	p.green.Fprintln(p.out, msg)
}

// Info prints a plain line.
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

// Step prints an emphasised progress line.
func (p *Printer) Step(format string, a ...any) {
	p.cyan.Fprintf(p.out, "→ %s\n", fmt.Sprintf(format, a...))
}

// Warning prints a message in yellow with a warning prefix.
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "!") {
		msg = "! " + msg
	}
	p.yellow.Fprintln(p.out, msg)
}

// Error prints title, explanation and suggestions to the error writer and
// returns an error carrying only the title, so cobra does not print it twice.
func (p *Printer) Error(title, explanation string, suggestions []string) error {
	p.red.Fprintf(p.errOut, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(p.errOut, "\n%s\n", explanation)
	}

	switch len(suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(p.errOut, "\n%s\n", suggestions[0])
	default:
		fmt.Fprintf(p.errOut, "\nEither:\n")
		for i, suggestion := range suggestions {
			fmt.Fprintf(p.errOut, "  %d. %s\n", i+1, suggestion)
		}
	}
	return &ReportedError{Title: title}
}

// ReportedError is returned by Error. The details were already written, so
// callers only need the title.
type ReportedError struct {
	Title string
}

func (e *ReportedError) Error() string { return e.Title }

// IsReported reports whether err was already printed through Error.
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}
