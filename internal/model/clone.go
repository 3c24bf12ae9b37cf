package model

// Clone returns a deep copy so callers cannot reach shared slices or pattern
// pointers.
func (f Field) Clone() Field {
	out := f
	if f.Kind == nil {
		return out
	}
	out.Kind = MatchKind(f.Kind,
		func(t Text) Kind {
			if t.Pattern != nil {
				pattern := *t.Pattern
				t.Pattern = &pattern
			}
			return t
		},
		func(s Select) Kind {
			s.Options = append([]Option(nil), s.Options...)
			return s
		},
		func(a TextArea) Kind { return a },
	)
	return out
}

// Clone returns a deep copy of the schema.
func (s FormSchema) Clone() FormSchema {
	out := s
	out.Fields = make([]Field, 0, len(s.Fields))
	for _, field := range s.Fields {
		out.Fields = append(out.Fields, field.Clone())
	}
	return out
}
