package model

// Descriptor is the flat, serialisable shape of a field used for schema
// export. It is produced from Field and never parsed back.
type Descriptor struct {
	ID          string   `json:"id" yaml:"id"`
	Type        string   `json:"type" yaml:"type"`
	Label       string   `json:"label" yaml:"label"`
	Required    bool     `json:"required" yaml:"required"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Validation  *Pattern `json:"validation,omitempty" yaml:"validation,omitempty"`
	Options     []Option `json:"options,omitempty" yaml:"options,omitempty"`
	Default     string   `json:"default,omitempty" yaml:"default,omitempty"`
	Rows        int      `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// SchemaDescriptor is the exported shape of a FormSchema.
type SchemaDescriptor struct {
	FormTitle       string       `json:"formTitle" yaml:"formTitle"`
	FormDescription string       `json:"formDescription" yaml:"formDescription"`
	Fields          []Descriptor `json:"fields" yaml:"fields"`
}

// Describe flattens the field. Text kinds report their input type hint
// ("text" when unset) as the descriptor type.
func (f Field) Describe() Descriptor {
	desc := Descriptor{
		ID:          f.ID,
		Label:       f.Label,
		Required:    f.Required,
		Placeholder: f.Placeholder,
	}
	if f.Kind == nil {
		return desc
	}
	MatchKind(f.Kind,
		func(t Text) struct{} {
			desc.Type = t.InputType
			if desc.Type == "" {
				desc.Type = string(FieldKindText)
			}
			if t.Pattern != nil {
				pattern := *t.Pattern
				desc.Validation = &pattern
			}
			return struct{}{}
		},
		func(s Select) struct{} {
			desc.Type = string(FieldKindSelect)
			desc.Options = append([]Option(nil), s.Options...)
			desc.Default = s.Default
			return struct{}{}
		},
		func(a TextArea) struct{} {
			desc.Type = string(FieldKindTextArea)
			desc.Rows = a.Rows
			return struct{}{}
		},
	)
	return desc
}

// Describe flattens the schema.
func (s FormSchema) Describe() SchemaDescriptor {
	out := SchemaDescriptor{
		FormTitle:       s.Title,
		FormDescription: s.Description,
		Fields:          make([]Descriptor, 0, len(s.Fields)),
	}
	for _, field := range s.Fields {
		out.Fields = append(out.Fields, field.Describe())
	}
	return out
}
