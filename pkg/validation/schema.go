package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-surveyform/pkg/model"
)

// SchemaIssue is a configuration problem found in a form schema.
type SchemaIssue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (i SchemaIssue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return i.Field + ": " + i.Message
}

// SchemaValidationResult captures the outcome of CheckSchema.
type SchemaValidationResult struct {
	Valid  bool          `json:"valid"`
	Issues []SchemaIssue `json:"issues,omitempty"`
}

// Err returns a *ConfigError describing every issue, or nil when the schema
// is valid.
func (r SchemaValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ConfigError{Issues: append([]SchemaIssue(nil), r.Issues...)}
}

// ConfigError reports a malformed schema. It is raised at load time so a
// broken control is never rendered.
type ConfigError struct {
	Issues []SchemaIssue
}

func (e *ConfigError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return "validation: invalid form schema: " + strings.Join(parts, "; ")
}

// CheckSchema verifies the structural invariants renderers rely on: unique
// non-empty ids, labels, usable select options and compilable patterns.
func CheckSchema(form model.FormSchema) SchemaValidationResult {
	var issues []SchemaIssue
	add := func(field, format string, args ...any) {
		issues = append(issues, SchemaIssue{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if len(form.Fields) == 0 {
		add("", "schema declares no fields")
	}

	seen := make(map[string]struct{}, len(form.Fields))
	for idx, field := range form.Fields {
		id := field.ID
		if strings.TrimSpace(id) == "" {
			add(fmt.Sprintf("fields[%d]", idx), "id is required")
			continue
		}
		if _, dup := seen[id]; dup {
			add(id, "duplicate field id")
		}
		seen[id] = struct{}{}

		if strings.TrimSpace(field.Label) == "" {
			add(id, "label is required")
		}
		if field.Kind == nil {
			add(id, "kind is required")
			continue
		}

		for _, msg := range kindIssues(field) {
			add(id, "%s", msg)
		}
	}

	return SchemaValidationResult{Valid: len(issues) == 0, Issues: issues}
}

func kindIssues(field model.Field) []string {
	return model.MatchKind(field.Kind,
		func(t model.Text) []string {
			if t.Pattern == nil {
				return nil
			}
			var out []string
			if strings.TrimSpace(t.Pattern.Expr) == "" {
				out = append(out, "pattern expression is empty")
			} else if _, err := regexp.Compile(t.Pattern.Expr); err != nil {
				out = append(out, fmt.Sprintf("pattern does not compile: %v", err))
			}
			if strings.TrimSpace(t.Pattern.Message) == "" {
				out = append(out, "pattern message is required")
			}
			return out
		},
		func(s model.Select) []string {
			var out []string
			if len(s.Options) == 0 {
				out = append(out, "select declares no options")
			}
			values := make(map[string]struct{}, len(s.Options))
			for _, option := range s.Options {
				if option.Value == "" {
					out = append(out, "option value is required")
					continue
				}
				if _, dup := values[option.Value]; dup {
					out = append(out, fmt.Sprintf("duplicate option value %q", option.Value))
				}
				values[option.Value] = struct{}{}
			}
			if s.Default != "" && !model.HasOption(s.Options, s.Default) {
				out = append(out, fmt.Sprintf("default %q is not a declared option", s.Default))
			}
			return out
		},
		func(a model.TextArea) []string {
			if a.Rows < 0 {
				return []string{"rows must not be negative"}
			}
			return nil
		},
	)
}
