package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/renderers/tui"
	"github.com/goliatone/go-surveyform/pkg/renderers/vanilla"
	"github.com/goliatone/go-surveyform/pkg/schema"
	"github.com/goliatone/go-surveyform/pkg/validation"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithSchema replaces the built-in survey schema.
func WithSchema(definition model.FormSchema) Option {
	return func(o *Orchestrator) {
		o.schema = definition
		o.schemaSet = true
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector resolves Request.ThemeName/ThemeVariant into renderer
// theme config. Defaults to the vanilla renderer's built-in manifest.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithControllerOptions forwards options to every controller built by
// Controller.
func WithControllerOptions(options ...form.Option) Option {
	return func(o *Orchestrator) {
		o.controllerOptions = append(o.controllerOptions, options...)
	}
}

// Orchestrator owns the schema and the renderers that can display it.
type Orchestrator struct {
	schema            model.FormSchema
	schemaSet         bool
	registry          *render.Registry
	defaultRenderer   string
	themeSelector     theme.ThemeSelector
	controllerOptions []form.Option
	initialiseErr     error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations: the survey
// schema plus the vanilla and tui renderers.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single render.
type Request struct {
	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select the theme passed to the renderer when
	// RenderOptions.Theme is unset.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries prefilled values and error text. When omitted,
	// renderers receive the zero-value struct.
	RenderOptions render.RenderOptions
}

// Schema returns the configured form schema.
func (o *Orchestrator) Schema() model.FormSchema {
	return o.schema
}

// Registry returns the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Controller builds a fresh controller for the schema.
func (o *Orchestrator) Controller(options ...form.Option) (*form.Controller, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	opts := append(append([]form.Option(nil), o.controllerOptions...), options...)
	return form.New(o.schema, opts...)
}

// Generate renders the schema with the requested renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil && o.themeSelector != nil {
		cfg, err := vanilla.ResolveTheme(o.themeSelector, req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: resolve theme: %w", err)
		}
		options.Theme = cfg
	}

	output, err := renderer.Render(ctx, o.schema, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// GenerateSnapshot renders the controller's current state.
func (o *Orchestrator) GenerateSnapshot(ctx context.Context, req Request, snap form.Snapshot) ([]byte, error) {
	options := render.OptionsFromSnapshot(o.schema, snap)
	options.Theme = req.RenderOptions.Theme
	options.FormErrors = render.MergeFormErrors(options.FormErrors, req.RenderOptions.FormErrors...)
	req.RenderOptions = options
	return o.Generate(ctx, req)
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if !o.schemaSet {
		o.schema = schema.Survey()
	}
	if err := validation.CheckSchema(o.schema).Err(); err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: %w", err)
		return
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
		o.registry.MustRegister(tui.New())
	}
	if o.themeSelector == nil {
		o.themeSelector = vanilla.NewManifestSelector(vanilla.DefaultManifest(), vanilla.VariantLight)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
