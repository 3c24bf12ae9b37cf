package schema

import "github.com/goliatone/go-surveyform/pkg/model"

// EmailPattern is the whole-value check applied to the survey email field.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

var survey = model.FormSchema{
	Title:       "Project Requirements Survey",
	Description: "Please fill out this survey about your project needs",
	Fields: []model.Field{
		{
			ID:          "name",
			Label:       "Full Name",
			Required:    true,
			Placeholder: "Enter your full name",
			Kind:        model.Text{InputType: "text"},
		},
		{
			ID:          "email",
			Label:       "Email Address",
			Required:    true,
			Placeholder: "you@example.com",
			Kind: model.Text{
				InputType: "email",
				Pattern: &model.Pattern{
					Expr:    EmailPattern,
					Message: "Please enter a valid email address",
				},
			},
		},
		{
			ID:       "companySize",
			Label:    "Company Size",
			Required: true,
			Kind: model.Select{
				Options: []model.Option{
					{Value: "1-50", Label: "1-50 employees"},
					{Value: "51-200", Label: "51-200 employees"},
					{Value: "201-1000", Label: "201-1000 employees"},
					{Value: "1000+", Label: "1000+ employees"},
				},
			},
		},
		{
			ID:          "comments",
			Label:       "Additional Comments",
			Placeholder: "Any other details you'd like to share...",
			Kind:        model.TextArea{},
		},
	},
}

// Survey returns the built-in project requirements survey. Each call returns
// an independent copy.
func Survey() model.FormSchema {
	return survey.Clone()
}
