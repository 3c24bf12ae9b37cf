package vanilla_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/renderers/vanilla"
	"github.com/goliatone/go-surveyform/pkg/submit"
)

func runtimeScript(t *testing.T) string {
	t.Helper()

	data, err := fs.ReadFile(vanilla.AssetsFS(), vanilla.RuntimeScriptName)
	if err != nil {
		t.Fatalf("read runtime script: %v", err)
	}
	return string(data)
}

func TestRuntimeScriptMessages(t *testing.T) {
	script := runtimeScript(t)

	mustContain(t, script,
		`field.dataset.label + " is required"`,
		`field.dataset.label + " is invalid"`,
		`control.dataset.patternMessage`,
		`"`+submit.Acknowledgement+`"`,
		`window.alert(ACK)`,
		`form.reset()`,
	)
}

func TestRuntimeScriptReadsRenderedAttributes(t *testing.T) {
	script := runtimeScript(t)
	html := renderSurvey(t, render.RenderOptions{})

	pairs := []struct {
		script string
		markup string
	}{
		{`dataset.label`, `data-label="Full Name"`},
		{`dataset.required === "true"`, `data-required="true"`},
		{`dataset.pattern`, `data-pattern="`},
		{`dataset.patternMessage`, `data-pattern-message="`},
		{`[data-error-for]`, `data-error-for="name"`},
		{`[data-field-id]`, `data-field-id="comments"`},
		{`form[data-formgen="survey"]`, `data-formgen="survey"`},
	}
	for _, pair := range pairs {
		if !strings.Contains(script, pair.script) {
			t.Fatalf("runtime script does not read %q", pair.script)
		}
		if !strings.Contains(html, pair.markup) {
			t.Fatalf("rendered form lacks %q", pair.markup)
		}
	}
}

func TestInlineRuntimeMatchesAsset(t *testing.T) {
	script := strings.TrimSpace(runtimeScript(t))
	html := renderSurvey(t, render.RenderOptions{})

	if !strings.Contains(html, script) {
		t.Fatalf("inline runtime differs from %s", vanilla.RuntimeScriptName)
	}
	mustContain(t, html, `" is required"`, submit.Acknowledgement)
}
