package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-surveyform/pkg/model"
)

// ErrorMapping splits validation errors into field-level display text keyed by
// field id and form-level messages.
type ErrorMapping struct {
	Fields map[string]string
	Form   []string
}

// MapFieldErrors resolves every error into the text the user sees. Ids that do
// not belong to the schema become form-level messages so nothing is lost.
func MapFieldErrors(definition model.FormSchema, errs model.ValidationErrors) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string]string, len(errs)),
	}
	if len(errs) == 0 {
		return mapping
	}

	ids := make([]string, 0, len(errs))
	for id := range errs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fieldErr := errs[id]
		field, ok := definition.Lookup(id)
		if !ok {
			mapping.Form = MergeFormErrors(mapping.Form, fieldErr.Text(id))
			continue
		}
		mapping.Fields[id] = fieldErr.Text(field.Label)
	}
	return mapping
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)

	seen := make(map[string]struct{}, len(combined))
	out := combined[:0]
	for _, msg := range combined {
		msg = strings.TrimSpace(msg)
		if msg == "" {
			continue
		}
		if _, ok := seen[msg]; ok {
			continue
		}
		seen[msg] = struct{}{}
		out = append(out, msg)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
