package contract

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/schema"
)

// Encode writes Document(form) to w. YAML output goes through the JSON form
// so kin-openapi's marshalling rules (extensions, omitted empties) apply to
// both encodings.
func Encode(w io.Writer, form model.FormSchema, format schema.Format) error {
	raw, err := json.MarshalIndent(Document(form), "", "  ")
	if err != nil {
		return fmt.Errorf("contract: encode json: %w", err)
	}

	switch format {
	case schema.FormatJSON:
		if _, err := w.Write(append(raw, '\n')); err != nil {
			return fmt.Errorf("contract: write: %w", err)
		}
		return nil
	case schema.FormatYAML, "":
		var generic any
		if err := yaml.Unmarshal(raw, &generic); err != nil {
			return fmt.Errorf("contract: encode yaml: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return fmt.Errorf("contract: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("contract: encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("contract: unsupported format %q", format)
	}
}
