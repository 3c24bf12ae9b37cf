package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/render"
)

// Session drives one interactive fill of a form controller.
type Session struct {
	renderer *Renderer

	mu     sync.Mutex
	latest form.Snapshot
}

// NewSession builds a session that prompts through the renderer's driver.
func (r *Renderer) NewSession() *Session {
	return &Session{renderer: r}
}

// Run prompts every field, then submits. When validation fails the error view
// is printed and only the invalid fields are prompted again. Run returns nil
// once handler accepted the values, ErrAborted when the user aborts, or the
// first driver or handler error.
func (s *Session) Run(ctx context.Context, ctrl *form.Controller, handler form.SubmitHandler) error {
	if ctrl == nil {
		return errors.New("tui: controller is required")
	}
	if handler == nil {
		return form.ErrNoHandler
	}
	driver := s.renderer.driver
	definition := ctrl.Schema()

	cancel := ctrl.Subscribe(s.observe)
	defer cancel()

	if err := s.printHeader(ctx, definition); err != nil {
		return err
	}

	pending := definition.Fields
	for {
		for _, field := range pending {
			value, err := s.prompt(ctx, field, ctrl.Value(field.ID), ctrl.ErrorText(field.ID))
			if err != nil {
				return err
			}
			if err := ctrl.Set(field.ID, value); err != nil {
				return fmt.Errorf("tui: set %q: %w", field.ID, err)
			}
		}

		if s.renderer.confirmSubmit {
			ok, err := driver.Confirm(ctx, ConfirmConfig{Message: "Submit?", Default: true})
			if err != nil {
				return err
			}
			if !ok {
				return ErrAborted
			}
		}

		err := ctrl.HandleSubmit(ctx, handler)
		if err == nil {
			return nil
		}
		if !form.IsValidationFailure(err) {
			return err
		}

		snap := s.snapshot()
		view, renderErr := s.renderer.Render(ctx, definition, render.OptionsFromSnapshot(definition, snap))
		if renderErr != nil {
			return renderErr
		}
		if err := driver.Info(ctx, string(view)); err != nil {
			return err
		}
		pending = invalidFields(definition, snap.Errors)
	}
}

func (s *Session) observe(snap form.Snapshot) {
	s.mu.Lock()
	s.latest = snap
	s.mu.Unlock()
}

func (s *Session) snapshot() form.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

func (s *Session) printHeader(ctx context.Context, definition model.FormSchema) error {
	driver := s.renderer.driver
	if definition.Title != "" {
		if err := driver.Info(ctx, definition.Title); err != nil {
			return err
		}
	}
	if definition.Description != "" {
		if err := driver.Info(ctx, definition.Description); err != nil {
			return err
		}
	}
	return nil
}

// prompt asks for one field value. current pre-fills the prompt and errText,
// when present, is shown as help.
func (s *Session) prompt(ctx context.Context, field model.Field, current, errText string) (string, error) {
	driver := s.renderer.driver
	help := field.Placeholder
	if errText != "" {
		help = errText
	}

	ask := model.MatchKind(field.Kind,
		func(t model.Text) func() (string, error) {
			cfg := InputConfig{Message: field.Label, Default: current, Help: help}
			if t.InputType == "password" {
				return func() (string, error) { return driver.Password(ctx, cfg) }
			}
			return func() (string, error) { return driver.Input(ctx, cfg) }
		},
		func(sel model.Select) func() (string, error) {
			return func() (string, error) { return s.promptSelect(ctx, field, sel, current, help) }
		},
		func(model.TextArea) func() (string, error) {
			cfg := TextAreaConfig{Message: field.Label, Default: current, Help: help}
			return func() (string, error) { return driver.TextArea(ctx, cfg) }
		},
	)
	return ask()
}

func (s *Session) promptSelect(ctx context.Context, field model.Field, sel model.Select, current, help string) (string, error) {
	values := make([]string, 0, len(sel.Options)+1)
	labels := make([]string, 0, len(sel.Options)+1)
	if !field.Required {
		values = append(values, "")
		labels = append(labels, s.renderer.theme.NoneChoice)
	}
	for _, option := range sel.Options {
		values = append(values, option.Value)
		labels = append(labels, option.Label)
	}

	defaultIndex := -1
	for i, value := range values {
		if value == current {
			defaultIndex = i
			break
		}
	}

	idx, err := s.renderer.driver.Select(ctx, SelectConfig{
		Message:      field.Label,
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         help,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(values) {
		return "", fmt.Errorf("%w: %d for field %q", ErrInvalidChoice, idx, field.ID)
	}
	return values[idx], nil
}

func invalidFields(definition model.FormSchema, errs model.ValidationErrors) []model.Field {
	out := make([]model.Field, 0, len(errs))
	for _, field := range definition.Fields {
		if _, ok := errs[field.ID]; ok {
			out = append(out, field)
		}
	}
	return out
}
