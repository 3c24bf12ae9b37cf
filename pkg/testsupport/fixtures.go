package testsupport

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/schema"
)

// ValidSurveyValues returns a complete, valid submission for schema.Survey.
func ValidSurveyValues() model.Values {
	return model.Values{
		"name":        "Jane Doe",
		"email":       "a@b.co",
		"companySize": "1-50",
		"comments":    "",
	}
}

// MustController builds a controller for form, failing the test on
// configuration errors.
func MustController(t *testing.T, definition model.FormSchema, options ...form.Option) *form.Controller {
	t.Helper()

	ctrl, err := form.New(definition, options...)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return ctrl
}

// MustSurveyController builds a controller for the built-in survey.
func MustSurveyController(t *testing.T, options ...form.Option) *form.Controller {
	t.Helper()
	return MustController(t, schema.Survey(), options...)
}

// Fill sets every value on ctrl, failing the test on the first error.
func Fill(t *testing.T, ctrl *form.Controller, values model.Values) {
	t.Helper()
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, id := range keys {
		if err := ctrl.Set(id, values[id]); err != nil {
			t.Fatalf("set %s: %v", id, err)
		}
	}
}

// RecordingHandler captures every submission it receives.
type RecordingHandler struct {
	mu    sync.Mutex
	calls []model.Values
	Err   error
}

// Submit records values and returns the configured error.
func (h *RecordingHandler) Submit(_ context.Context, values model.Values) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, values.Clone())
	return h.Err
}

// Calls returns the recorded submissions.
func (h *RecordingHandler) Calls() []model.Values {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]model.Values, len(h.calls))
	copy(out, h.calls)
	return out
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
