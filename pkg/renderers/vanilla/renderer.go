package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/render"
	rendertemplate "github.com/goliatone/go-surveyform/pkg/render/template"
	gotemplate "github.com/goliatone/go-surveyform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-surveyform/pkg/renderers/vanilla/components"
)

const formTemplate = "templates/form.tmpl"

// DefaultFormID is the id of the emitted form element.
const DefaultFormID = "survey-form"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	upstream         bool
	upstreamOptions  []gotemplatepkg.Option
	registry         *components.Registry
	inlineAssets     bool
	assetBaseURL     string
	formID           string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithGoTemplateEngine renders through the github.com/goliatone/go-template
// engine instead of the bundled adapter. The template bundle and the .tmpl
// extension are set first so options can override them.
func WithGoTemplateEngine(options ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		cfg.upstream = true
		cfg.upstreamOptions = append(cfg.upstreamOptions, options...)
	}
}

// WithComponentRegistry replaces the built-in component registry.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithInlineAssets controls whether the stylesheet and runtime script are
// embedded in the output (the default) or referenced under WithAssetBaseURL.
func WithInlineAssets(inline bool) Option {
	return func(cfg *config) {
		cfg.inlineAssets = inline
	}
}

// WithAssetBaseURL sets the URL prefix used for linked assets.
func WithAssetBaseURL(base string) Option {
	return func(cfg *config) {
		cfg.assetBaseURL = strings.TrimSpace(base)
	}
}

// WithFormID overrides DefaultFormID.
func WithFormID(id string) Option {
	return func(cfg *config) {
		if id = strings.TrimSpace(id); id != "" {
			cfg.formID = id
		}
	}
}

// Renderer produces an HTML fragment holding the survey form, its inline
// error slots and the browser runtime that validates it on submit.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	registry     *components.Registry
	inlineAssets bool
	assetBaseURL string
	formID       string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		inlineAssets: true,
		assetBaseURL: "/assets/surveyform/",
		formID:       DefaultFormID,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil && cfg.upstream {
		opts := append([]gotemplatepkg.Option{
			gotemplatepkg.WithFS(cfg.templateFS),
			gotemplatepkg.WithExtension(".tmpl"),
		}, cfg.upstreamOptions...)
		engine, err := gotemplate.NewUpstream(opts...)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	registry := cfg.registry
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}

	return &Renderer{
		templates:    renderer,
		registry:     registry,
		inlineAssets: cfg.inlineAssets,
		assetBaseURL: cfg.assetBaseURL,
		formID:       cfg.formID,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits the form fragment. Fields render in schema order. Values and
// error text come from options.
func (r *Renderer) Render(ctx context.Context, form model.FormSchema, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	fields := make([]string, 0, len(form.Fields))
	comp := newComponentRenderer(r.templates, r.registry, options)
	for _, field := range form.Fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if field.Kind == nil {
			return nil, fmt.Errorf("vanilla renderer: field %q has no kind", field.ID)
		}
		markup, err := comp.render(field)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: %w", err)
		}
		fields = append(fields, markup)
	}

	assets, err := r.assetView(comp, options)
	if err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate(formTemplate, map[string]any{
		"form": map[string]any{
			"id":          r.formID,
			"title":       form.Title,
			"description": sanitizeDescription(form.Description),
		},
		"fields":     fields,
		"formErrors": options.FormErrors,
		"theme":      themeView(options),
		"assets":     assets,
		"classes":    chromeClasses(),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type scriptView struct {
	Src    string `json:"src,omitempty"`
	Inline string `json:"inline,omitempty"`
	Defer  bool   `json:"defer,omitempty"`
	Module bool   `json:"module,omitempty"`
}

type assetsView struct {
	Stylesheets  []string     `json:"stylesheets,omitempty"`
	InlineStyles []string     `json:"inlineStyles,omitempty"`
	Scripts      []scriptView `json:"scripts,omitempty"`
}

func (r *Renderer) assetView(comp *componentRenderer, options render.RenderOptions) (assetsView, error) {
	stylesheets, scripts := comp.assets()

	var view assetsView
	for _, name := range stylesheets {
		if !r.inlineAssets {
			view.Stylesheets = append(view.Stylesheets, r.assetURL(name))
			continue
		}
		css, err := readAsset(name)
		if err != nil {
			return assetsView{}, fmt.Errorf("vanilla renderer: read asset %q: %w", name, err)
		}
		view.InlineStyles = append(view.InlineStyles, css)
	}
	if options.Theme != nil && options.Theme.AssetURL != nil {
		if href := options.Theme.AssetURL(StylesheetAssetKey); href != "" {
			view.Stylesheets = append(view.Stylesheets, href)
		}
	}

	for _, script := range scripts {
		if !r.inlineAssets {
			view.Scripts = append(view.Scripts, scriptView{
				Src:    r.assetURL(script.Src),
				Defer:  script.Defer,
				Module: script.Module,
			})
			continue
		}
		js, err := readAsset(script.Src)
		if err != nil {
			return assetsView{}, fmt.Errorf("vanilla renderer: read asset %q: %w", script.Src, err)
		}
		view.Scripts = append(view.Scripts, scriptView{Inline: js, Module: script.Module})
	}
	return view, nil
}

func (r *Renderer) assetURL(name string) string {
	if r.assetBaseURL == "" {
		return name
	}
	return strings.TrimSuffix(r.assetBaseURL, "/") + "/" + name
}

func themeView(options render.RenderOptions) map[string]any {
	cfg := options.Theme
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
		"style":   cssVarsStyle(cfg.CSSVars),
	}
}
