package form_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/testsupport"
	"github.com/goliatone/go-surveyform/pkg/validation"
)

func TestRequiredFieldsFailIndividually(t *testing.T) {
	for _, id := range []string{"name", "email", "companySize"} {
		t.Run(id, func(t *testing.T) {
			ctrl := testsupport.MustSurveyController(t)
			values := testsupport.ValidSurveyValues()
			values[id] = ""
			testsupport.Fill(t, ctrl, values)

			handler := &testsupport.RecordingHandler{}
			err := ctrl.HandleSubmit(context.Background(), handler)
			if !errors.Is(err, form.ErrValidationFailed) {
				t.Fatalf("expected ErrValidationFailed, got %v", err)
			}

			want := model.ValidationErrors{id: {Rule: model.RuleRequired}}
			if diff := cmp.Diff(want, ctrl.Errors()); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
			if calls := handler.Calls(); len(calls) != 0 {
				t.Fatalf("handler must not be called, got %d calls", len(calls))
			}
		})
	}
}

func TestRequiredNameScenario(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)
	values := testsupport.ValidSurveyValues()
	values["name"] = ""
	testsupport.Fill(t, ctrl, values)

	ctrl.Validate()
	if got := ctrl.ErrorText("name"); got != "Full Name is required" {
		t.Fatalf("unexpected name error %q", got)
	}

	if err := ctrl.Set("name", "Jane Doe"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	ctrl.Validate()
	if got := ctrl.ErrorText("name"); got != "" {
		t.Fatalf("expected no name error, got %q", got)
	}
}

func TestEmailPatternScenario(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)
	values := testsupport.ValidSurveyValues()
	values["email"] = "not-an-email"
	testsupport.Fill(t, ctrl, values)

	errs := ctrl.Validate()
	want := model.ValidationErrors{
		"email": {Rule: model.RulePattern, Message: "Please enter a valid email address"},
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if got := ctrl.ErrorText("email"); got != "Please enter a valid email address" {
		t.Fatalf("unexpected email error %q", got)
	}

	if err := ctrl.Set("email", "a@b.co"); err != nil {
		t.Fatalf("set email: %v", err)
	}
	if errs := ctrl.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestRequiredTakesPrecedenceOverPattern(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)
	ctrl.Validate()
	if got := ctrl.ErrorText("email"); got != "Email Address is required" {
		t.Fatalf("expected required message for empty email, got %q", got)
	}
}

func TestEmptyOptionalFieldSkipsPattern(t *testing.T) {
	ctrl := testsupport.MustController(t, model.FormSchema{
		Fields: []model.Field{{
			ID:    "website",
			Label: "Website",
			Kind:  model.Text{Pattern: &model.Pattern{Expr: `^https://`, Message: "Use https"}},
		}},
	})

	if errs := ctrl.Validate(); len(errs) != 0 {
		t.Fatalf("expected empty optional field to pass, got %+v", errs)
	}
	if err := ctrl.Set("website", "http://x"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := ctrl.Validate()["website"].Message; got != "Use https" {
		t.Fatalf("expected pattern failure, got %q", got)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)
	testsupport.Fill(t, ctrl, model.Values{"email": "broken"})

	first := ctrl.Validate()
	second := ctrl.Validate()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("validation not idempotent (-first +second):\n%s", diff)
	}
}

func TestValidSubmissionHandsOffEveryField(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)
	testsupport.Fill(t, ctrl, model.Values{
		"name":        "Jane Doe",
		"email":       "a@b.co",
		"companySize": "1-50",
	})

	handler := &testsupport.RecordingHandler{}
	if err := ctrl.HandleSubmit(context.Background(), handler); err != nil {
		t.Fatalf("submit: %v", err)
	}

	calls := handler.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected exactly one hand-off, got %d", len(calls))
	}
	if diff := cmp.Diff(testsupport.ValidSurveyValues(), calls[0]); diff != "" {
		t.Fatalf("handed-off values mismatch (-want +got):\n%s", diff)
	}
	if errs := ctrl.Errors(); len(errs) != 0 {
		t.Fatalf("expected zero errors, got %+v", errs)
	}
}

func TestSuccessfulSubmitDiscardsValues(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)
	testsupport.Fill(t, ctrl, testsupport.ValidSurveyValues())

	if err := ctrl.HandleSubmit(context.Background(), &testsupport.RecordingHandler{}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := ctrl.Value("name"); got != "" {
		t.Fatalf("expected values to be discarded, got name=%q", got)
	}
	if ctrl.Snapshot().Submitted {
		t.Fatalf("expected submitted flag to reset")
	}
}

func TestHandlerErrorKeepsValues(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)
	testsupport.Fill(t, ctrl, testsupport.ValidSurveyValues())

	boom := errors.New("boom")
	err := ctrl.HandleSubmit(context.Background(), &testsupport.RecordingHandler{Err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped handler error, got %v", err)
	}
	if got := ctrl.Value("name"); got != "Jane Doe" {
		t.Fatalf("expected values to survive handler error, got %q", got)
	}
}

func TestSelectRejectsUndeclaredOption(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)

	err := ctrl.Set("companySize", "5000+")
	if !errors.Is(err, form.ErrUndeclaredOption) {
		t.Fatalf("expected ErrUndeclaredOption, got %v", err)
	}
	if got := ctrl.Value("companySize"); got != "" {
		t.Fatalf("undeclared value must not be stored, got %q", got)
	}

	for _, option := range model.OptionsOf(ctrl.Schema().Fields[2].Kind) {
		if err := ctrl.Set("companySize", option.Value); err != nil {
			t.Fatalf("declared option %q rejected: %v", option.Value, err)
		}
	}
}

func TestSelectDefaultCountsAsValue(t *testing.T) {
	ctrl := testsupport.MustController(t, model.FormSchema{
		Fields: []model.Field{{
			ID:       "plan",
			Label:    "Plan",
			Required: true,
			Kind: model.Select{
				Options: []model.Option{{Value: "free", Label: "Free"}, {Value: "pro", Label: "Pro"}},
				Default: "pro",
			},
		}},
	})

	if got := ctrl.Value("plan"); got != "pro" {
		t.Fatalf("expected default value, got %q", got)
	}
	if errs := ctrl.Validate(); len(errs) != 0 {
		t.Fatalf("expected default to satisfy required, got %+v", errs)
	}
}

func TestSetUnknownField(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)
	if err := ctrl.Set("phone", "123"); !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSetRevalidatesAfterSubmitAttempt(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)

	if err := ctrl.Set("name", ""); err != nil {
		t.Fatalf("set: %v", err)
	}
	if errs := ctrl.Errors(); len(errs) != 0 {
		t.Fatalf("nothing should validate before the first submit, got %+v", errs)
	}

	_ = ctrl.HandleSubmit(context.Background(), &testsupport.RecordingHandler{})
	if ctrl.ErrorText("name") == "" {
		t.Fatalf("expected name error after submit")
	}

	if err := ctrl.Set("name", "Jane"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := ctrl.ErrorText("name"); got != "" {
		t.Fatalf("expected name error cleared on change, got %q", got)
	}
	if ctrl.ErrorText("email") == "" {
		t.Fatalf("other field errors must remain until the next pass")
	}
}

func TestListenersObserveEveryMutation(t *testing.T) {
	var snapshots []form.Snapshot
	ctrl := testsupport.MustSurveyController(t, form.WithListener(func(s form.Snapshot) {
		snapshots = append(snapshots, s)
	}))

	var late int
	cancel := ctrl.Subscribe(func(form.Snapshot) { late++ })

	_ = ctrl.Set("name", "Jane")
	ctrl.Validate()
	cancel()
	ctrl.Reset()

	if len(snapshots) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(snapshots))
	}
	if snapshots[0].Values["name"] != "Jane" {
		t.Fatalf("first snapshot should carry the new value, got %+v", snapshots[0].Values)
	}
	if len(snapshots[1].Errors) == 0 {
		t.Fatalf("validate snapshot should carry errors")
	}
	if late != 2 {
		t.Fatalf("cancelled listener should have seen 2 events, got %d", late)
	}
}

func TestNewRejectsMalformedSchema(t *testing.T) {
	_, err := form.New(model.FormSchema{
		Fields: []model.Field{
			{ID: "size", Label: "Size", Kind: model.Select{}},
		},
	})
	var cfgErr *validation.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)
	err := ctrl.Register(model.Field{ID: "name", Label: "Name", Kind: model.Text{}})
	if !errors.Is(err, form.ErrDuplicateField) {
		t.Fatalf("expected ErrDuplicateField, got %v", err)
	}
}

func TestRegisterAppendsToSchema(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)
	late := model.Field{ID: "role", Label: "Role", Required: true, Kind: model.Text{}}
	if err := ctrl.Register(late); err != nil {
		t.Fatalf("register: %v", err)
	}

	fields := ctrl.Schema().Fields
	if got := fields[len(fields)-1]; got.ID != "role" {
		t.Fatalf("expected late field last in schema, got %q", got.ID)
	}
	if _, ok := ctrl.Values()["role"]; !ok {
		t.Fatalf("expected late field in values")
	}
	if _, failed := ctrl.Validate()["role"]; !failed {
		t.Fatalf("expected required late field to fail validation")
	}
}

func TestRegisterRejectsMalformedField(t *testing.T) {
	badPattern := model.Text{Pattern: &model.Pattern{Expr: "[", Message: "bad"}}
	cases := map[string]model.Field{
		"no label":    {ID: "role", Kind: model.Text{}},
		"no options":  {ID: "tier", Label: "Tier", Kind: model.Select{}},
		"bad pattern": {ID: "code", Label: "Code", Kind: badPattern},
	}
	for name, field := range cases {
		t.Run(name, func(t *testing.T) {
			ctrl := testsupport.MustSurveyController(t)
			before := len(ctrl.Schema().Fields)

			var cfgErr *validation.ConfigError
			if err := ctrl.Register(field); !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if got := len(ctrl.Schema().Fields); got != before {
				t.Fatalf("schema grew to %d fields after rejected register", got)
			}
			if err := ctrl.Set(field.ID, "x"); !errors.Is(err, form.ErrUnknownField) {
				t.Fatalf("expected ErrUnknownField, got %v", err)
			}
		})
	}
}

func TestHandleSubmitHonoursContext(t *testing.T) {
	ctrl := testsupport.MustSurveyController(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ctrl.HandleSubmit(ctx, &testsupport.RecordingHandler{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := ctrl.HandleSubmit(context.Background(), nil); !errors.Is(err, form.ErrNoHandler) {
		t.Fatalf("expected ErrNoHandler, got %v", err)
	}
}
