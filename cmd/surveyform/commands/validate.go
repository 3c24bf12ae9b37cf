package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/orchestrator"
	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/submit"
)

func newValidateCommand(rt *runtime) *cobra.Command {
	var (
		sets   []string
		format string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Submit values without prompting and report field errors",
		Example: `  surveyform validate --set name="Jane Doe" --set email=jane@example.com --set companySize=1-50
  surveyform validate --set email=nope --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if format != "text" && format != "json" {
				return rt.printer.Error("Invalid format", fmt.Sprintf("format must be text or json, got %q", format), nil)
			}

			orch, _, err := rt.newOrchestrator()
			if err != nil {
				return rt.printer.Error("Renderer setup failed", err.Error(), nil)
			}
			ctrl, err := orch.Controller()
			if err != nil {
				return rt.printer.Error("Invalid survey schema", err.Error(), nil)
			}

			for _, raw := range sets {
				id, value, ok := strings.Cut(raw, "=")
				if !ok {
					return rt.printer.Error("Invalid --set value", fmt.Sprintf("%q is not of the form id=value", raw), nil)
				}
				if err := ctrl.Set(strings.TrimSpace(id), value); err != nil {
					return rt.setError(orch.Schema(), strings.TrimSpace(id), err)
				}
			}

			var ack submit.Acknowledger = rt.printer
			if format == "json" {
				ack = nil
			}
			err = ctrl.HandleSubmit(ctx, rt.submitHandler(orch, ack))
			switch {
			case err == nil:
				if format == "json" {
					return writeJSON(cmd, validationReport{Valid: true})
				}
				return nil
			case form.IsValidationFailure(err):
			case submit.IsContractViolation(err):
				return rt.printer.Error("Submission rejected", err.Error(), nil)
			default:
				return rt.printer.Error("Submission failed", err.Error(), nil)
			}

			snap := ctrl.Snapshot()
			if format == "json" {
				mapping := render.MapFieldErrors(orch.Schema(), snap.Errors)
				if err := writeJSON(cmd, validationReport{Errors: mapping.Fields}); err != nil {
					return err
				}
			} else {
				view, err := orch.GenerateSnapshot(ctx, orchestrator.Request{Renderer: "tui"}, snap)
				if err != nil {
					return rt.printer.Error("Render failed", err.Error(), nil)
				}
				if _, err := cmd.OutOrStdout().Write(view); err != nil {
					return err
				}
			}
			return rt.printer.Error("Validation failed", fmt.Sprintf("%d field(s) need attention.", len(snap.Errors)), nil)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as id=value (repeatable)")
	cmd.Flags().StringVar(&format, "format", "text", "report format: text or json")
	return cmd
}

type validationReport struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (rt *runtime) setError(definition model.FormSchema, id string, err error) error {
	switch {
	case errors.Is(err, form.ErrUnknownField):
		return rt.printer.Error("Unknown field", err.Error(), []string{
			"Use one of: " + strings.Join(definition.IDs(), ", "),
		})
	case errors.Is(err, form.ErrUndeclaredOption):
		field, _ := definition.Lookup(id)
		values := make([]string, 0)
		for _, option := range model.OptionsOf(field.Kind) {
			values = append(values, option.Value)
		}
		return rt.printer.Error("Invalid option", err.Error(), []string{
			"Use one of: " + strings.Join(values, ", "),
		})
	default:
		return rt.printer.Error("Invalid value", err.Error(), nil)
	}
}
