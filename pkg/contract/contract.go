package contract

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-surveyform/pkg/model"
)

const (
	// OpenAPIVersion is the document version emitted by Document.
	OpenAPIVersion = "3.0.3"
	// SubmissionPath is the path of the single submission operation.
	SubmissionPath = "/submissions"
	// OperationID identifies the submission operation.
	OperationID = "submitSurvey"
	// DocumentVersion is the info.version of the generated document.
	DocumentVersion = "1.0.0"
)

// ErrViolation is returned by Check when the payload does not satisfy the
// schema.
var ErrViolation = errors.New("contract: payload violates submission schema")

// Schema returns the payload schema for form: an object with one string
// property per field, the field's pattern, an enum for selects and the list
// of required ids. Required fields also carry minLength 1 since the
// controller treats an empty string as missing.
func Schema(form model.FormSchema) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Title = form.Title
	schema.Description = form.Description
	schema.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}

	for _, field := range form.Fields {
		schema.WithPropertyRef(field.ID, &openapi3.SchemaRef{Value: propertySchema(field)})
		if field.Required {
			schema.Required = append(schema.Required, field.ID)
		}
	}
	return schema
}

func propertySchema(field model.Field) *openapi3.Schema {
	prop := openapi3.NewStringSchema()
	prop.Title = field.Label
	if field.Required {
		prop.WithMinLength(1)
	}

	model.MatchKind(field.Kind,
		func(text model.Text) struct{} {
			if text.InputType == "email" {
				prop.Format = "email"
			}
			if text.Pattern != nil {
				prop.Pattern = text.Pattern.Expr
			}
			return struct{}{}
		},
		func(choice model.Select) struct{} {
			enum := make([]any, 0, len(choice.Options))
			for _, option := range choice.Options {
				enum = append(enum, option.Value)
			}
			prop.WithEnum(enum...)
			if choice.Default != "" {
				prop.Default = choice.Default
			}
			return struct{}{}
		},
		func(model.TextArea) struct{} {
			prop.Extensions = map[string]any{"x-multiline": true}
			return struct{}{}
		},
	)
	return prop
}

// Document returns an OpenAPI document with a single POST operation whose
// request body is Schema(form).
func Document(form model.FormSchema) *openapi3.T {
	body := openapi3.NewRequestBody().
		WithRequired(true).
		WithDescription("Collected survey values keyed by field id.").
		WithJSONSchema(Schema(form))

	responses := openapi3.NewResponses(
		openapi3.WithStatus(http.StatusNoContent, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Submission accepted."),
		}),
		openapi3.WithStatus(http.StatusUnprocessableEntity, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Submission failed validation."),
		}),
	)

	operation := &openapi3.Operation{
		OperationID: OperationID,
		Summary:     "Submit " + form.Title,
		RequestBody: &openapi3.RequestBodyRef{Value: body},
		Responses:   responses,
	}

	return &openapi3.T{
		OpenAPI: OpenAPIVersion,
		Info: &openapi3.Info{
			Title:       form.Title,
			Description: form.Description,
			Version:     DocumentVersion,
		},
		Paths: openapi3.NewPaths(openapi3.WithPath(SubmissionPath, &openapi3.PathItem{
			Post: operation,
		})),
	}
}

// Validate checks the generated document with kin-openapi's own validator.
func Validate(ctx context.Context, form model.FormSchema) error {
	if err := Document(form).Validate(ctx); err != nil {
		return fmt.Errorf("contract: validate document: %w", err)
	}
	return nil
}

// Check verifies values against Schema(form). Empty values of optional fields
// are treated as absent, matching the controller's rule that constraints other
// than required are skipped for empty input.
func Check(form model.FormSchema, values model.Values) error {
	payload := make(map[string]any, len(values))
	for id, value := range values {
		if value == "" {
			if field, ok := form.Lookup(id); ok && !field.Required {
				continue
			}
		}
		payload[id] = value
	}

	if err := Schema(form).VisitJSON(payload, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%w: %w", ErrViolation, err)
	}
	return nil
}
