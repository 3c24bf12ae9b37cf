// Package submit provides the handlers that sit on the other side of the
// submission boundary.
package submit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/goliatone/go-surveyform/pkg/contract"
	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/model"
)

// Acknowledgement is the message shown once a submission was accepted.
const Acknowledgement = "Form submitted successfully!"

// ErrContractViolation is returned by WithContract when values do not match
// the submission schema.
var ErrContractViolation = contract.ErrViolation

// Acknowledger tells the user a submission went through.
type Acknowledger interface {
	Success(format string, a ...any)
}

// Logger logs every submitted value and acknowledges the submission.
type Logger struct {
	ack    Acknowledger
	logger *slog.Logger
}

var _ form.SubmitHandler = (*Logger)(nil)

// NewLogger returns a handler writing values to logger and the
// acknowledgement to ack. Nil arguments fall back to slog.Default and a
// silent acknowledger.
func NewLogger(ack Acknowledger, logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{ack: ack, logger: logger}
}

// Submit logs values in field id order then acknowledges.
func (l *Logger) Submit(ctx context.Context, values model.Values) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	attrs := make([]any, 0, len(ids))
	for _, id := range ids {
		attrs = append(attrs, slog.String(id, values[id]))
	}
	l.logger.InfoContext(ctx, "form submitted", slog.Group("values", attrs...))

	if l.ack != nil {
		l.ack.Success("%s", Acknowledgement)
	}
	return nil
}

// WithContract checks values against contract.Schema(definition) before
// forwarding them to next.
func WithContract(definition model.FormSchema, next form.SubmitHandler) form.SubmitHandler {
	return form.SubmitFunc(func(ctx context.Context, values model.Values) error {
		if next == nil {
			return form.ErrNoHandler
		}
		if err := contract.Check(definition, values); err != nil {
			return err
		}
		return next.Submit(ctx, values)
	})
}

// IsContractViolation reports whether err came from a failed contract check.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrContractViolation)
}

// Discard accepts every submission without side effects.
var Discard form.SubmitHandler = form.SubmitFunc(func(ctx context.Context, _ model.Values) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	return nil
})
