package vanilla

// ChromeClass is a typed identifier for the semantic CSS classes emitted
// around controls. The embedded stylesheet and runtime target these names.
type ChromeClass string

const (
	ClassContainer   ChromeClass = "formgen-container"
	ClassHeader      ChromeClass = "formgen-header"
	ClassTitle       ChromeClass = "formgen-title"
	ClassDescription ChromeClass = "formgen-description"
	ClassForm        ChromeClass = "formgen-form"
	ClassField       ChromeClass = "formgen-field"
	ClassLabel       ChromeClass = "formgen-label"
	ClassControl     ChromeClass = "formgen-control"
	ClassError       ChromeClass = "formgen-error"
	ClassErrors      ChromeClass = "formgen-errors"
	ClassActions     ChromeClass = "formgen-actions"
	ClassSubmit      ChromeClass = "formgen-submit"
)

func chromeClasses() map[string]string {
	return map[string]string{
		"container":   string(ClassContainer),
		"header":      string(ClassHeader),
		"title":       string(ClassTitle),
		"description": string(ClassDescription),
		"form":        string(ClassForm),
		"field":       string(ClassField),
		"label":       string(ClassLabel),
		"control":     string(ClassControl),
		"error":       string(ClassError),
		"errors":      string(ClassErrors),
		"actions":     string(ClassActions),
		"submit":      string(ClassSubmit),
	}
}
