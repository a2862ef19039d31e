// Package report provides output formatters for the MCP server test
// report: self-contained HTML, styled terminal text, JSON and YAML.
package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/mcpreport/internal/coverage"
	"github.com/unbound-force/mcpreport/internal/page"
)

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version  string             `json:"version"`
	Report   page.Document      `json:"report"`
	Findings []coverage.Finding `json:"findings"`
}

// WriteJSON writes the report document as formatted JSON, together
// with the consistency findings for its coverage records.
func WriteJSON(w io.Writer, doc page.Document, version string) error {
	findings := coverage.Check(doc.Coverage.Records)
	if findings == nil {
		findings = []coverage.Finding{}
	}
	report := JSONReport{
		Version:  version,
		Report:   doc,
		Findings: findings,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
