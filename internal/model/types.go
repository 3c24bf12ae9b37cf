package model

// FieldKind names the closed set of input kinds a field can take. It mirrors
// the "type" attribute in exported descriptors.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindSelect   FieldKind = "select"
	FieldKindTextArea FieldKind = "textarea"
)

const (
	RuleRequired = "required"
	RulePattern  = "pattern"
)

// Kind is the per-kind payload of a field. The interface is sealed: only Text,
// Select and TextArea implement it, so invalid combinations (options on a text
// input, a pattern on a select) cannot be expressed.
type Kind interface {
	FieldKind() FieldKind
	sealed()
}

// Pattern is a regular expression constraint applied to free-text inputs. The
// expression is tested against the whole value with search semantics, so
// anchors must come from the expression itself.
type Pattern struct {
	Expr    string `json:"pattern" yaml:"pattern"`
	Message string `json:"message" yaml:"message"`
}

// Text is a single-line input. InputType is forwarded to the control as a
// hint (keyboard, input mode) and never used for validation.
type Text struct {
	InputType string
	Pattern   *Pattern
}

// Option is one choice of a Select field.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Select is a single choice control. Default, when set, must be one of the
// declared option values; otherwise the field starts unset.
type Select struct {
	Options []Option
	Default string
}

// TextArea is a multi-line input.
type TextArea struct {
	Rows int
}

func (Text) FieldKind() FieldKind     { return FieldKindText }
func (Select) FieldKind() FieldKind   { return FieldKindSelect }
func (TextArea) FieldKind() FieldKind { return FieldKindTextArea }

func (Text) sealed()     {}
func (Select) sealed()   {}
func (TextArea) sealed() {}

// Field describes one form input.
type Field struct {
	ID          string
	Label       string
	Required    bool
	Placeholder string
	Kind        Kind
}

// FormSchema is the ordered set of fields plus the form chrome.
type FormSchema struct {
	Title       string
	Description string
	Fields      []Field
}

// Lookup returns the field registered under id.
func (s FormSchema) Lookup(id string) (Field, bool) {
	for _, field := range s.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}

// IDs returns the field ids in declaration order.
func (s FormSchema) IDs() []string {
	ids := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		ids = append(ids, field.ID)
	}
	return ids
}

// Values maps a field id to its current string value.
type Values map[string]string

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// FieldError is a failed constraint. Message is the constraint's custom
// message and is empty for the required rule.
type FieldError struct {
	Rule    string `json:"rule"`
	Message string `json:"message,omitempty"`
}

// Text returns the message shown to the user, falling back to
// "<label> is required" when the constraint has no custom message.
func (e FieldError) Text(label string) string {
	if e.Message != "" {
		return e.Message
	}
	return label + " is required"
}

// ValidationErrors maps a field id to its failed constraint.
type ValidationErrors map[string]FieldError

// Clone returns an independent copy.
func (e ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(e))
	for key, value := range e {
		out[key] = value
	}
	return out
}
