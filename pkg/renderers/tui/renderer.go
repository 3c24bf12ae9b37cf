package tui

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/render"
)

// Renderer implements render.Renderer for terminals. Render produces a
// static text view of the form state; NewSession drives the interactive flow.
type Renderer struct {
	driver        PromptDriver
	out           io.Writer
	theme         Theme
	confirmSubmit bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a terminal renderer backed by survey/v2 unless a driver is
// supplied.
func New(options ...Option) *Renderer {
	r := &Renderer{
		out:   os.Stdout,
		theme: DefaultTheme,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(r.out)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the text view format.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the title, description and one line per field holding its
// label and value, followed by the field error when present.
func (r *Renderer) Render(ctx context.Context, form model.FormSchema, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	writeHeader(&b, form)
	for _, field := range form.Fields {
		b.WriteString(field.Label)
		b.WriteString(": ")
		b.WriteString(r.displayValue(field, options.Values[field.ID]))
		b.WriteByte('\n')
		if msg := options.Errors[field.ID]; msg != "" {
			b.WriteString(r.theme.ErrorPrefix)
			b.WriteString(msg)
			b.WriteByte('\n')
		}
	}
	for _, msg := range options.FormErrors {
		b.WriteString(r.theme.ErrorPrefix)
		b.WriteString(msg)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func writeHeader(b *strings.Builder, form model.FormSchema) {
	if form.Title != "" {
		b.WriteString(form.Title)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("=", len([]rune(form.Title))))
		b.WriteByte('\n')
	}
	if form.Description != "" {
		b.WriteString(form.Description)
		b.WriteByte('\n')
	}
	if form.Title != "" || form.Description != "" {
		b.WriteByte('\n')
	}
}

// displayValue shows select option labels instead of raw values and masks
// password input.
func (r *Renderer) displayValue(field model.Field, value string) string {
	if value == "" {
		return r.theme.EmptyValue
	}
	return model.MatchKind(field.Kind,
		func(t model.Text) string {
			if t.InputType == "password" {
				return strings.Repeat("*", len([]rune(value)))
			}
			return value
		},
		func(s model.Select) string {
			for _, option := range s.Options {
				if option.Value == value {
					return option.Label
				}
			}
			return value
		},
		func(model.TextArea) string {
			return strings.ReplaceAll(value, "\n", "\n  ")
		},
	)
}
