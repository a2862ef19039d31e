package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/unbound-force/mcpreport/internal/page"
)

// WriteYAML writes the report document as YAML.
func WriteYAML(w io.Writer, doc page.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
