package render

import (
	"context"

	"github.com/goliatone/go-surveyform/pkg/model"
)

// Renderer converts a form schema plus per-request state into a byte
// representation (HTML, terminal text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormSchema, options RenderOptions) ([]byte, error)
}
