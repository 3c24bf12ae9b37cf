package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-surveyform/pkg/model"
)

// Format selects the export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml (case-insensitive).
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("schema: unsupported export format %q", raw)
	}
}

// Encode writes the flattened field descriptors of form to w.
func Encode(w io.Writer, form model.FormSchema, format Format) error {
	desc := form.Describe()
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(desc); err != nil {
			return fmt.Errorf("schema: encode json: %w", err)
		}
		return nil
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(desc); err != nil {
			return fmt.Errorf("schema: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("schema: encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("schema: unsupported export format %q", format)
	}
}
