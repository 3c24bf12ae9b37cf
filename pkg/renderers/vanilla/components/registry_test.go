package components

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryDescriptorClone(t *testing.T) {
	reg := New()
	renderer := func(*bytes.Buffer, Control, ComponentData) error { return nil }

	if err := reg.Register("Test", Descriptor{Renderer: renderer, Stylesheets: []string{"/a.css"}}); err != nil {
		t.Fatalf("register: %v", err)
	}

	desc, ok := reg.Descriptor("test")
	if !ok {
		t.Fatalf("descriptor not found")
	}
	desc.Stylesheets = append(desc.Stylesheets, "/mutated.css")

	original, _ := reg.Descriptor("test")
	if diff := cmp.Diff([]string{"/a.css"}, original.Stylesheets); diff != "" {
		t.Fatalf("registry descriptor mutated (-want +got):\n%s", diff)
	}
}

func TestRegistryRejectsNilRenderer(t *testing.T) {
	if err := New().Register("input", Descriptor{}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestDefaultRegistryAssetsDeduplicate(t *testing.T) {
	reg := NewDefaultRegistry()

	if diff := cmp.Diff([]string{NameInput, NameSelect, NameTextarea}, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	styles, scripts := reg.Assets([]string{NameInput, NameSelect, NameTextarea, "unknown"})
	if diff := cmp.Diff([]string{StylesheetName}, styles); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
	if len(scripts) != 1 || scripts[0].Src != RuntimeScriptName {
		t.Fatalf("expected single runtime script, got %+v", scripts)
	}
}

type recordingTemplates struct {
	names []string
	data  []any
	err   error
}

func (r *recordingTemplates) Render(name string, data any, _ ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data)
}

func (r *recordingTemplates) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	r.names = append(r.names, name)
	r.data = append(r.data, data)
	return "<" + name + ">", r.err
}

func (r *recordingTemplates) RenderString(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (r *recordingTemplates) RegisterFilter(string, func(any, any) (any, error)) error { return nil }

func (r *recordingTemplates) GlobalContext(any) error { return nil }

func TestTemplateComponentPrefersThemePartial(t *testing.T) {
	templates := &recordingTemplates{}
	desc, _ := NewDefaultRegistry().Descriptor(NameSelect)

	var buf bytes.Buffer
	err := desc.Renderer(&buf, Control{ID: "size"}, ComponentData{
		Template: templates,
		Partials: map[string]string{PartialSelect: "themes/acme/select.tmpl"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "<themes/acme/select.tmpl>" {
		t.Fatalf("expected theme partial, got %q", buf.String())
	}

	buf.Reset()
	if err := desc.Renderer(&buf, Control{ID: "size"}, ComponentData{Template: templates}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasSuffix(templates.names[1], "components/select.tmpl") {
		t.Fatalf("expected built-in template, got %q", templates.names[1])
	}
}

func TestTemplateComponentWrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	desc, _ := NewDefaultRegistry().Descriptor(NameInput)

	err := desc.Renderer(&bytes.Buffer{}, Control{}, ComponentData{Template: &recordingTemplates{err: boom}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped template error, got %v", err)
	}
	if err := desc.Renderer(&bytes.Buffer{}, Control{}, ComponentData{}); err == nil {
		t.Fatalf("expected error without template renderer")
	}
}
