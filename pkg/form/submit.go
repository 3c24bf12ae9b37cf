package form

import (
	"context"

	"github.com/goliatone/go-surveyform/pkg/model"
)

// SubmitHandler receives the collected values once every field is valid. It
// is the only hand-off point out of the controller.
type SubmitHandler interface {
	Submit(ctx context.Context, values model.Values) error
}

// SubmitFunc adapts a function into a SubmitHandler.
type SubmitFunc func(ctx context.Context, values model.Values) error

// Submit calls the underlying function.
func (fn SubmitFunc) Submit(ctx context.Context, values model.Values) error {
	return fn(ctx, values)
}
