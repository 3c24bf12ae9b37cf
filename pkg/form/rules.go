package form

import (
	"fmt"
	"regexp"

	"github.com/goliatone/go-surveyform/pkg/model"
)

// registration holds the declarative constraints attached to a field.
type registration struct {
	field    model.Field
	required bool
	pattern  *compiledPattern
	options  []model.Option
	choice   bool
	initial  string
}

type compiledPattern struct {
	re      *regexp.Regexp
	message string
}

func newRegistration(field model.Field) (registration, error) {
	reg := registration{
		field:    field,
		required: field.Required,
	}
	if field.Kind == nil {
		return reg, fmt.Errorf("form: field %q has no kind", field.ID)
	}

	err := model.MatchKind(field.Kind,
		func(t model.Text) error {
			if t.Pattern == nil {
				return nil
			}
			re, err := regexp.Compile(t.Pattern.Expr)
			if err != nil {
				return fmt.Errorf("form: field %q: compile pattern: %w", field.ID, err)
			}
			reg.pattern = &compiledPattern{re: re, message: t.Pattern.Message}
			return nil
		},
		func(s model.Select) error {
			reg.choice = true
			reg.options = append([]model.Option(nil), s.Options...)
			reg.initial = s.Default
			return nil
		},
		func(model.TextArea) error { return nil },
	)
	return reg, err
}

// check runs required first, then pattern. Empty values never fail the
// pattern, so an empty optional field is always valid.
func (r registration) check(value string) (model.FieldError, bool) {
	if value == "" {
		if r.required {
			return model.FieldError{Rule: model.RuleRequired}, false
		}
		return model.FieldError{}, true
	}
	if r.pattern != nil && !r.pattern.re.MatchString(value) {
		return model.FieldError{Rule: model.RulePattern, Message: r.pattern.message}, false
	}
	return model.FieldError{}, true
}

func (r registration) accepts(value string) bool {
	if !r.choice || value == "" {
		return true
	}
	return model.HasOption(r.options, value)
}
