package model

import "fmt"

// MatchKind dispatches on the field kind. Every kind has a dedicated branch,
// so introducing a new kind changes this signature and every caller stops
// compiling until it handles the new case. A nil kind panics; schemas are
// checked before they reach renderers.
func MatchKind[T any](kind Kind, text func(Text) T, choice func(Select) T, area func(TextArea) T) T {
	switch k := kind.(type) {
	case Text:
		return text(k)
	case *Text:
		return text(*k)
	case Select:
		return choice(k)
	case *Select:
		return choice(*k)
	case TextArea:
		return area(k)
	case *TextArea:
		return area(*k)
	default:
		panic(fmt.Sprintf("model: unsupported field kind %T", kind))
	}
}

// PatternOf returns the pattern constraint for free-text kinds, or nil.
func PatternOf(kind Kind) *Pattern {
	if kind == nil {
		return nil
	}
	return MatchKind(kind,
		func(t Text) *Pattern { return t.Pattern },
		func(Select) *Pattern { return nil },
		func(TextArea) *Pattern { return nil },
	)
}

// OptionsOf returns the declared options of a Select kind, or nil.
func OptionsOf(kind Kind) []Option {
	if kind == nil {
		return nil
	}
	return MatchKind(kind,
		func(Text) []Option { return nil },
		func(s Select) []Option { return s.Options },
		func(TextArea) []Option { return nil },
	)
}

// DefaultOf returns the explicit default value of a Select kind, or "".
func DefaultOf(kind Kind) string {
	if kind == nil {
		return ""
	}
	return MatchKind(kind,
		func(Text) string { return "" },
		func(s Select) string { return s.Default },
		func(TextArea) string { return "" },
	)
}

// HasOption reports whether value is one of the declared option values.
func HasOption(options []Option, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}
