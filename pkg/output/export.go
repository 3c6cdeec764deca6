package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/finance-tracker/internal/record"
	"gopkg.in/yaml.v3"
)

// Export formats accepted by ExportRecord.
const (
	ExportJSON = "json"
	ExportYAML = "yaml"
)

// ExportRecord writes the full record in the export format. JSON matches
// the import format; YAML carries the same keys for reading by hand.
func ExportRecord(w io.Writer, r record.Record, exportFormat string) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}

	switch exportFormat {
	case "", ExportJSON:
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		return nil
	case ExportYAML:
		// JSON is valid YAML, so the node tree keeps the JSON key names and order.
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to convert export to yaml: %w", err)
		}
		blockStyle(&doc)

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&doc); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("expected export format of %s or %s, got %s", ExportJSON, ExportYAML, exportFormat)
	}
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}
