package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-surveyform/pkg/contract"
	"github.com/goliatone/go-surveyform/pkg/schema"
)

func newSchemaCommand(rt *runtime) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the survey field descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := schema.ParseFormat(format)
			if err != nil {
				return rt.printer.Error("Invalid format", err.Error(), []string{"Pass --format yaml or --format json"})
			}
			if err := schema.Encode(cmd.OutOrStdout(), schema.Survey(), f); err != nil {
				return rt.printer.Error("Export failed", err.Error(), nil)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

func newContractCommand(rt *runtime) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Print the OpenAPI description of the submission payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := schema.ParseFormat(format)
			if err != nil {
				return rt.printer.Error("Invalid format", err.Error(), []string{"Pass --format yaml or --format json"})
			}
			if err := contract.Validate(cmd.Context(), schema.Survey()); err != nil {
				return rt.printer.Error("Invalid contract", err.Error(), nil)
			}
			if err := contract.Encode(cmd.OutOrStdout(), schema.Survey(), f); err != nil {
				return rt.printer.Error("Export failed", err.Error(), nil)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}
