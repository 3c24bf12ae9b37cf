package vanilla

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/render/template"
	"github.com/goliatone/go-surveyform/pkg/renderers/vanilla/components"
)

const fieldTemplate = "templates/field.tmpl"

type componentRenderer struct {
	templates template.TemplateRenderer
	registry  *components.Registry
	partials  map[string]string
	options   render.RenderOptions

	usedComponents map[string]struct{}
}

func newComponentRenderer(templates template.TemplateRenderer, registry *components.Registry, options render.RenderOptions) *componentRenderer {
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	var partials map[string]string
	if options.Theme != nil {
		partials = options.Theme.Partials
	}
	return &componentRenderer{
		templates:      templates,
		registry:       registry,
		partials:       partials,
		options:        options,
		usedComponents: make(map[string]struct{}),
	}
}

// render produces the wrapped markup of one field: label, control and the
// inline error slot beneath it.
func (r *componentRenderer) render(field model.Field) (string, error) {
	componentName, control := buildControl(field, r.options)

	descriptor, ok := r.registry.Descriptor(componentName)
	if !ok {
		return "", fmt.Errorf("component %q not registered for field %q", componentName, field.ID)
	}

	var markup bytes.Buffer
	if err := descriptor.Renderer(&markup, control, components.ComponentData{
		Template: r.templates,
		Partials: r.partials,
	}); err != nil {
		return "", fmt.Errorf("render component %q for field %q: %w", componentName, field.ID, err)
	}
	r.usedComponents[componentName] = struct{}{}

	wrapped, err := r.templates.RenderTemplate(fieldTemplate, map[string]any{
		"control":     control,
		"component":   componentName,
		"controlHTML": strings.TrimSpace(markup.String()),
		"invalid":     control.Invalid(),
		"classes":     chromeClasses(),
	})
	if err != nil {
		return "", fmt.Errorf("render field %q: %w", field.ID, err)
	}
	return wrapped, nil
}

func (r *componentRenderer) assets() (stylesheets []string, scripts []components.Script) {
	if len(r.usedComponents) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(r.usedComponents))
	for name := range r.usedComponents {
		names = append(names, name)
	}
	slices.Sort(names)
	return r.registry.Assets(names)
}

// buildControl resolves the component and view for field. The value comes
// from options, falling back to the select default.
func buildControl(field model.Field, options render.RenderOptions) (string, components.Control) {
	value, hasValue := options.Values[field.ID]

	control := components.Control{
		ID:          field.ID,
		ControlID:   componentControlID(field.ID),
		Label:       field.Label,
		Required:    field.Required,
		Placeholder: field.Placeholder,
		Value:       value,
		Error:       options.Errors[field.ID],
		ErrorID:     componentErrorID(field.ID),
	}

	name := model.MatchKind(field.Kind,
		func(t model.Text) string {
			control.InputType = t.InputType
			if control.InputType == "" {
				control.InputType = "text"
			}
			if t.Pattern != nil {
				control.Pattern = t.Pattern.Expr
				control.PatternMessage = t.Pattern.Message
			}
			return components.NameInput
		},
		func(s model.Select) string {
			if !hasValue {
				control.Value = s.Default
			}
			control.ShowUnset = s.Default == ""
			control.Unset = control.Value == ""
			control.Options = make([]components.Choice, 0, len(s.Options))
			for _, option := range s.Options {
				control.Options = append(control.Options, components.Choice{
					Value:    option.Value,
					Label:    option.Label,
					Selected: option.Value == control.Value,
				})
			}
			return components.NameSelect
		},
		func(a model.TextArea) string {
			control.Rows = a.Rows
			return components.NameTextarea
		},
	)
	return name, control
}
