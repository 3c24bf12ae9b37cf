package components

// Control is the view of a single field handed to component templates. JSON
// keys are the names templates address.
type Control struct {
	ID             string   `json:"id"`
	ControlID      string   `json:"controlId"`
	Label          string   `json:"label"`
	Required       bool     `json:"required"`
	Placeholder    string   `json:"placeholder,omitempty"`
	InputType      string   `json:"inputType,omitempty"`
	Value          string   `json:"value"`
	Pattern        string   `json:"pattern,omitempty"`
	PatternMessage string   `json:"patternMessage,omitempty"`
	Rows           int      `json:"rows,omitempty"`
	Options        []Choice `json:"options,omitempty"`
	// ShowUnset adds the empty placeholder option to a select without a
	// default; Unset marks it selected.
	ShowUnset bool   `json:"showUnset,omitempty"`
	Unset     bool   `json:"unset,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorID   string `json:"errorId"`
}

// Choice is one select option.
type Choice struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

// Invalid reports whether the control carries an error message.
func (c Control) Invalid() bool {
	return c.Error != ""
}
