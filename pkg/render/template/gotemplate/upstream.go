package gotemplate

import (
	"fmt"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-surveyform/pkg/render/template"
)

var _ template.TemplateRenderer = (*gotemplatepkg.Engine)(nil)

// NewUpstream builds the github.com/goliatone/go-template engine. Use it when
// callers already configure that engine elsewhere and want the same
// options (globals, template funcs, base dirs) applied to survey templates.
func NewUpstream(options ...gotemplatepkg.Option) (template.TemplateRenderer, error) {
	engine, err := gotemplatepkg.NewRenderer(options...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: configure go-template engine: %w", err)
	}
	return engine, nil
}
