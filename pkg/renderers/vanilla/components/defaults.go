package components

import (
	"bytes"
	"fmt"
	"strings"
)

const templatePrefix = "templates/components/"

var runtimeScripts = []Script{{Src: RuntimeScriptName, Defer: true}}

// NewDefaultRegistry constructs a registry holding the input, select and
// textarea components used by the vanilla renderer.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameInput, Descriptor{
		Renderer:    templateComponentRenderer(PartialInput, templatePrefix+"input.tmpl"),
		Stylesheets: []string{StylesheetName},
		Scripts:     runtimeScripts,
	})
	registry.MustRegister(NameSelect, Descriptor{
		Renderer:    templateComponentRenderer(PartialSelect, templatePrefix+"select.tmpl"),
		Stylesheets: []string{StylesheetName},
		Scripts:     runtimeScripts,
	})
	registry.MustRegister(NameTextarea, Descriptor{
		Renderer:    templateComponentRenderer(PartialTextarea, templatePrefix+"textarea.tmpl"),
		Stylesheets: []string{StylesheetName},
		Scripts:     runtimeScripts,
	})

	return registry
}

// templateComponentRenderer renders templateName, or the theme partial
// registered under partialKey when present.
func templateComponentRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, control Control, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolved := templateName
		if candidate := strings.TrimSpace(data.Partials[partialKey]); candidate != "" {
			resolved = candidate
		}

		rendered, err := data.Template.RenderTemplate(resolved, map[string]any{
			"control": control,
			"invalid": control.Invalid(),
		})
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", resolved, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}
