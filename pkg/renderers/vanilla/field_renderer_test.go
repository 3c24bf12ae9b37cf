package vanilla

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/renderers/vanilla/components"
)

func TestBuildControlSelectDefault(t *testing.T) {
	field := model.Field{
		ID:    "plan",
		Label: "Plan",
		Kind: model.Select{
			Options: []model.Option{{Value: "free", Label: "Free"}, {Value: "pro", Label: "Pro"}},
			Default: "pro",
		},
	}

	name, control := buildControl(field, render.RenderOptions{})
	if name != components.NameSelect {
		t.Fatalf("expected select component, got %q", name)
	}
	if control.ShowUnset || control.Unset {
		t.Fatalf("select with default must not offer the unset option: %+v", control)
	}
	want := []components.Choice{
		{Value: "free", Label: "Free"},
		{Value: "pro", Label: "Pro", Selected: true},
	}
	if diff := cmp.Diff(want, control.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	_, control = buildControl(field, render.RenderOptions{Values: model.Values{"plan": "free"}})
	if !control.Options[0].Selected || control.Options[1].Selected {
		t.Fatalf("explicit value must override default: %+v", control.Options)
	}
}

func TestBuildControlTextDefaultsInputType(t *testing.T) {
	name, control := buildControl(model.Field{ID: "nick", Label: "Nick", Kind: model.Text{}}, render.RenderOptions{
		Errors: map[string]string{"nick": "Nick is required"},
	})
	if name != components.NameInput {
		t.Fatalf("expected input component, got %q", name)
	}
	if control.InputType != "text" {
		t.Fatalf("expected text input type, got %q", control.InputType)
	}
	if !control.Invalid() || control.ErrorID != "fg-nick-error" {
		t.Fatalf("unexpected error state %+v", control)
	}
}

func TestBuildControlTextArea(t *testing.T) {
	name, control := buildControl(model.Field{ID: "notes", Label: "Notes", Kind: &model.TextArea{Rows: 6}}, render.RenderOptions{})
	if name != components.NameTextarea || control.Rows != 6 {
		t.Fatalf("unexpected textarea control %q %+v", name, control)
	}
}
