package components

// Canonical component names used by the vanilla renderer and default registry.
const (
	NameInput    = "input"
	NameSelect   = "select"
	NameTextarea = "textarea"
)

// Theme partial keys consulted before the built-in component templates.
const (
	PartialInput    = "forms.input"
	PartialSelect   = "forms.select"
	PartialTextarea = "forms.textarea"
)

// Runtime asset file names shared by every built-in component.
const (
	StylesheetName    = "formgen-survey.css"
	RuntimeScriptName = "formgen-survey.js"
)
