// Package surveyform renders the Project Requirements Survey and validates its
// submissions. The root package re-exports the most common entry points.
package surveyform

import (
	"context"

	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/orchestrator"
	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/schema"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface validation errors.
type RenderOptions = render.RenderOptions

// Values maps field ids to submitted values.
type Values = model.Values

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Schema returns the built-in survey schema.
func Schema() model.FormSchema {
	return schema.Survey()
}

// NewController returns a controller for the built-in survey.
func NewController(options ...form.Option) (*form.Controller, error) {
	return form.New(schema.Survey(), options...)
}

// GenerateHTML renders the survey with the named renderer. It is the simplest
// entry point for callers that just want HTML output.
func GenerateHTML(ctx context.Context, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Renderer: rendererName,
	})
}
