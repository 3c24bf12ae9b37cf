package model

import internalmodel "github.com/goliatone/go-surveyform/internal/model"

// FieldKind re-exports the internal FieldKind enumeration.
type FieldKind = internalmodel.FieldKind

const (
	FieldKindText     = internalmodel.FieldKindText
	FieldKindSelect   = internalmodel.FieldKindSelect
	FieldKindTextArea = internalmodel.FieldKindTextArea
)

const (
	RuleRequired = internalmodel.RuleRequired
	RulePattern  = internalmodel.RulePattern
)

type Kind = internalmodel.Kind
type Text = internalmodel.Text
type Select = internalmodel.Select
type TextArea = internalmodel.TextArea
type Option = internalmodel.Option
type Pattern = internalmodel.Pattern
type Field = internalmodel.Field
type FormSchema = internalmodel.FormSchema
type Values = internalmodel.Values
type FieldError = internalmodel.FieldError
type ValidationErrors = internalmodel.ValidationErrors
type Descriptor = internalmodel.Descriptor
type SchemaDescriptor = internalmodel.SchemaDescriptor

// MatchKind dispatches on the kind, see internal/model.MatchKind.
func MatchKind[T any](kind Kind, text func(Text) T, choice func(Select) T, area func(TextArea) T) T {
	return internalmodel.MatchKind(kind, text, choice, area)
}

// PatternOf returns the pattern of a Text kind, or nil.
func PatternOf(kind Kind) *Pattern {
	return internalmodel.PatternOf(kind)
}

// OptionsOf returns the options of a Select kind, or nil.
func OptionsOf(kind Kind) []Option {
	return internalmodel.OptionsOf(kind)
}

// DefaultOf returns the explicit default of a Select kind, or "".
func DefaultOf(kind Kind) string {
	return internalmodel.DefaultOf(kind)
}

// HasOption reports whether value is a declared option value.
func HasOption(options []Option, value string) bool {
	return internalmodel.HasOption(options, value)
}
