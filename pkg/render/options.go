package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/model"
)

// RenderOptions describe per-request data that renderers use to reflect the
// controller state without mutating the schema.
type RenderOptions struct {
	// Values pre-populates rendered controls keyed by field id. Missing ids
	// render empty (selects fall back to their default or the unset option).
	Values model.Values
	// Errors carries display text keyed by field id. Renderers show each entry
	// directly beneath the matching control.
	Errors map[string]string
	// FormErrors holds messages that could not be attributed to a field.
	FormErrors []string
	// Theme supplies resolved theme tokens. Renderers that do not theme ignore
	// it.
	Theme *theme.RendererConfig
}

// OptionsFromSnapshot maps controller state into render options, translating
// field errors into their display text.
func OptionsFromSnapshot(definition model.FormSchema, snap form.Snapshot) RenderOptions {
	mapping := MapFieldErrors(definition, snap.Errors)
	return RenderOptions{
		Values:     snap.Values.Clone(),
		Errors:     mapping.Fields,
		FormErrors: mapping.Form,
	}
}
