package vanilla_test

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/renderers/vanilla"
	"github.com/goliatone/go-surveyform/pkg/schema"
)

func renderSurvey(t *testing.T, options render.RenderOptions, opts ...vanilla.Option) string {
	t.Helper()

	renderer, err := vanilla.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	output, err := renderer.Render(context.Background(), schema.Survey(), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(output)
}

func mustContain(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, html)
		}
	}
}

func TestRendererEmitsEveryFieldInOrder(t *testing.T) {
	html := renderSurvey(t, render.RenderOptions{})

	mustContain(t, html,
		`<h2 class="formgen-title">Project Requirements Survey</h2>`,
		"Please fill out this survey about your project needs",
		`<label for="fg-name" class="formgen-label">Full Name</label>`,
		`<input type="text" id="fg-name" name="name"`,
		`placeholder="Enter your full name"`,
		`<input type="email" id="fg-email" name="email"`,
		`data-pattern="^[^\s@]+@[^\s@]+\.[^\s@]+$"`,
		`data-pattern-message="Please enter a valid email address"`,
		`<select id="fg-companySize" name="companySize"`,
		`<textarea id="fg-comments" name="comments"`,
		`<button type="submit" class="formgen-submit">Submit</button>`,
	)

	last := -1
	for _, id := range []string{"fg-name", "fg-email", "fg-companySize", "fg-comments"} {
		idx := strings.Index(html, `id="`+id+`"`)
		if idx <= last {
			t.Fatalf("field %s out of order", id)
		}
		last = idx
	}
}

func TestRendererSelectStartsUnset(t *testing.T) {
	html := renderSurvey(t, render.RenderOptions{})

	mustContain(t, html, `<option value="" disabled selected>Select an option</option>`)

	last := strings.Index(html, `<option value="" disabled selected>`)
	for _, value := range []string{"1-50", "51-200", "201-1000", "1000+"} {
		idx := strings.Index(html, `<option value="`+value+`">`)
		if idx <= last {
			t.Fatalf("option %s missing or out of order", value)
		}
		last = idx
	}
}

func TestRendererPrefillsValues(t *testing.T) {
	html := renderSurvey(t, render.RenderOptions{
		Values: model.Values{
			"name":        `Jane "JD" <Doe>`,
			"companySize": "51-200",
			"comments":    "hello",
		},
	})

	mustContain(t, html,
		`value="Jane &quot;JD&quot; &lt;Doe&gt;"`,
		`<option value="51-200" selected>`,
		`<option value="" disabled>Select an option</option>`,
		`>hello</textarea>`,
	)
}

func TestRendererShowsInlineErrors(t *testing.T) {
	html := renderSurvey(t, render.RenderOptions{
		Errors: map[string]string{
			"name":  "Full Name is required",
			"email": "Please enter a valid email address",
		},
	})

	mustContain(t, html,
		`<span id="fg-name-error" class="formgen-error" data-error-for="name" role="alert">Full Name is required</span>`,
		`<span id="fg-email-error" class="formgen-error" data-error-for="email" role="alert">Please enter a valid email address</span>`,
		`<span id="fg-comments-error" class="formgen-error" data-error-for="comments" role="alert" hidden></span>`,
		`aria-invalid="true"`,
	)

	nameControl := strings.Index(html, `id="fg-name"`)
	nameError := strings.Index(html, `id="fg-name-error"`)
	emailLabel := strings.Index(html, `for="fg-email"`)
	if !(nameControl < nameError && nameError < emailLabel) {
		t.Fatalf("error text must sit directly beneath its control")
	}
}

func TestRendererFormErrors(t *testing.T) {
	html := renderSurvey(t, render.RenderOptions{FormErrors: []string{"ghost is required"}})
	mustContain(t, html, `<ul class="formgen-errors" role="alert">`, "<li>ghost is required</li>")
}

func TestRendererInlinesRuntimeByDefault(t *testing.T) {
	html := renderSurvey(t, render.RenderOptions{})

	mustContain(t, html,
		"<style data-formgen-style>",
		"--formgen-accent",
		"Form submitted successfully!",
		`data-formgen="survey" novalidate`,
	)
	if strings.Count(html, "Form submitted successfully!") != 1 {
		t.Fatalf("runtime script must be emitted once")
	}
}

func TestRendererLinksAssetsWhenNotInlined(t *testing.T) {
	html := renderSurvey(t, render.RenderOptions{},
		vanilla.WithInlineAssets(false),
		vanilla.WithAssetBaseURL("/static/"),
	)

	mustContain(t, html,
		`<link rel="stylesheet" href="/static/formgen-survey.css">`,
		`<script src="/static/formgen-survey.js" defer></script>`,
	)
	if strings.Contains(html, "<style") {
		t.Fatalf("expected no inline styles")
	}
}

func TestRendererAppliesTheme(t *testing.T) {
	cfg, err := vanilla.DefaultTheme(vanilla.VariantDark)
	if err != nil {
		t.Fatalf("default theme: %v", err)
	}

	html := renderSurvey(t, render.RenderOptions{Theme: cfg})
	mustContain(t, html,
		`data-theme="survey" data-theme-variant="dark"`,
		"--formgen-surface: #1f2937;",
	)
}

func TestRendererSanitizesDescription(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := schema.Survey()
	form.Description = `Tell us <b>everything</b><script>alert(1)</script><img src=x onerror=alert(1)>`

	output, err := renderer.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(output)
	mustContain(t, html, "Tell us <b>everything</b>")
	for _, banned := range []string{"<script>alert(1)", "onerror", "<img"} {
		if strings.Contains(html, banned) {
			t.Fatalf("description not sanitized, found %q", banned)
		}
	}
}

func TestRendererUsesThemePartials(t *testing.T) {
	files := fstest.MapFS{
		"themes/acme/input.tmpl": {Data: []byte(`<input data-acme="{{ control.id }}">`)},
	}
	err := fs.WalkDir(vanilla.TemplatesFS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(vanilla.TemplatesFS(), path)
		if err != nil {
			return err
		}
		files[path] = &fstest.MapFile{Data: data}
		return nil
	})
	if err != nil {
		t.Fatalf("copy templates: %v", err)
	}

	cfg, err := vanilla.DefaultTheme("")
	if err != nil {
		t.Fatalf("default theme: %v", err)
	}
	cfg.Partials["forms.input"] = "themes/acme/input.tmpl"

	html := renderSurvey(t, render.RenderOptions{Theme: cfg}, vanilla.WithTemplatesFS(files))
	mustContain(t, html, `<input data-acme="name">`, `<input data-acme="email">`, `<select id="fg-companySize"`)
}

func TestRendererHonoursContext(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, schema.Survey(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRendererMetadata(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "vanilla" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestAssetsFSServesRuntime(t *testing.T) {
	for _, name := range []string{vanilla.StylesheetName, vanilla.RuntimeScriptName} {
		if _, err := fs.ReadFile(vanilla.AssetsFS(), name); err != nil {
			t.Fatalf("expected %s in assets: %v", name, err)
		}
	}
}
