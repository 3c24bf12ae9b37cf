package contract_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-surveyform/pkg/contract"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/schema"
	"github.com/goliatone/go-surveyform/pkg/testsupport"
)

func TestSchemaDescribesEveryField(t *testing.T) {
	s := contract.Schema(schema.Survey())

	if !s.Type.Is(openapi3.TypeObject) {
		t.Fatalf("expected object schema, got %v", s.Type)
	}
	if diff := cmp.Diff([]string{"name", "email", "companySize"}, s.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	for _, id := range []string{"name", "email", "companySize", "comments"} {
		prop, ok := s.Properties[id]
		if !ok || prop.Value == nil {
			t.Fatalf("missing property %q", id)
		}
		if !prop.Value.Type.Is(openapi3.TypeString) {
			t.Fatalf("property %q: expected string, got %v", id, prop.Value.Type)
		}
	}

	email := s.Properties["email"].Value
	if email.Pattern != schema.EmailPattern {
		t.Fatalf("email pattern = %q", email.Pattern)
	}

	size := s.Properties["companySize"].Value
	want := []any{"1-50", "51-200", "201-1000", "1000+"}
	if diff := cmp.Diff(want, size.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentRoundTripsThroughLoader(t *testing.T) {
	raw, err := json.Marshal(contract.Document(schema.Survey()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("validate: %v", err)
	}

	item := doc.Paths.Find(contract.SubmissionPath)
	if item == nil || item.Post == nil {
		t.Fatalf("expected POST %s", contract.SubmissionPath)
	}
	if item.Post.OperationID != contract.OperationID {
		t.Fatalf("operationId = %q", item.Post.OperationID)
	}
	media := item.Post.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		t.Fatalf("expected json request body schema")
	}
	if _, ok := media.Schema.Value.Properties["companySize"]; !ok {
		t.Fatalf("request body schema lost its properties")
	}
}

func TestValidateGeneratedDocument(t *testing.T) {
	if err := contract.Validate(context.Background(), schema.Survey()); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestCheckAcceptsValidSubmission(t *testing.T) {
	if err := contract.Check(schema.Survey(), testsupport.ValidSurveyValues()); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestCheckRejectsViolations(t *testing.T) {
	cases := map[string]func(model.Values){
		"bad email":    func(v model.Values) { v["email"] = "not-an-email" },
		"empty name":   func(v model.Values) { v["name"] = "" },
		"missing size": func(v model.Values) { delete(v, "companySize") },
		"unknown size": func(v model.Values) { v["companySize"] = "huge" },
		"extra field":  func(v model.Values) { v["ghost"] = "boo" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			values := testsupport.ValidSurveyValues()
			mutate(values)
			err := contract.Check(schema.Survey(), values)
			if !errors.Is(err, contract.ErrViolation) {
				t.Fatalf("expected ErrViolation, got %v", err)
			}
		})
	}
}

func TestCheckTreatsEmptyOptionalAsAbsent(t *testing.T) {
	form := model.FormSchema{
		Title: "Optional",
		Fields: []model.Field{{
			ID:    "site",
			Label: "Site",
			Kind:  model.Text{Pattern: &model.Pattern{Expr: `^https://`, Message: "https only"}},
		}},
	}
	if err := contract.Check(form, model.Values{"site": ""}); err != nil {
		t.Fatalf("empty optional value should pass: %v", err)
	}
	if err := contract.Check(form, model.Values{"site": "http://x"}); !errors.Is(err, contract.ErrViolation) {
		t.Fatalf("expected violation, got %v", err)
	}
}

func TestEncodeFormats(t *testing.T) {
	var jsonOut bytes.Buffer
	if err := contract.Encode(&jsonOut, schema.Survey(), schema.FormatJSON); err != nil {
		t.Fatalf("encode json: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(jsonOut.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if decoded["openapi"] != contract.OpenAPIVersion {
		t.Fatalf("openapi = %v", decoded["openapi"])
	}

	var yamlOut bytes.Buffer
	if err := contract.Encode(&yamlOut, schema.Survey(), schema.FormatYAML); err != nil {
		t.Fatalf("encode yaml: %v", err)
	}
	var fromYAML map[string]any
	if err := yaml.Unmarshal(yamlOut.Bytes(), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if _, ok := fromYAML["paths"]; !ok {
		t.Fatalf("yaml output missing paths:\n%s", yamlOut.String())
	}
}
