// Package coverage defines the Coverage Record type, the literal set of
// records shown in the MCP server test report, and the badge variant
// thresholds applied to coverage percentages.
package coverage

// Variant is the visual style of a coverage badge.
type Variant string

// Badge variants.
const (
	VariantSecondary   Variant = "secondary"
	VariantOutline     Variant = "outline"
	VariantDestructive Variant = "destructive"
)

// Coverage thresholds for badge variant selection.
const (
	SecondaryThreshold = 75
	OutlineThreshold   = 50
)

// Record is one row of the coverage summary: a named component with its
// test totals and a coverage percentage.
//
// Coverage is stored independently of the counts and is not derived
// from Passed/Total, so the two can disagree. See Check.
type Record struct {
	Component string `json:"component" yaml:"component"`
	Total     int    `json:"total" yaml:"total"`
	Passed    int    `json:"passed" yaml:"passed"`
	Failed    int    `json:"failed" yaml:"failed"`
	Coverage  int    `json:"coverage" yaml:"coverage"`
}

// records is the literal coverage data. Never hand it out directly.
var records = [...]Record{
	{Component: "Core MCP Server", Total: 12, Passed: 11, Failed: 1, Coverage: 98},
	{Component: "Injection Techniques", Total: 15, Passed: 12, Failed: 3, Coverage: 74},
	{Component: "WAF Bypass Module", Total: 20, Passed: 15, Failed: 5, Coverage: 85},
	{Component: "Payload Manager", Total: 20, Passed: 12, Failed: 8, Coverage: 90},
	{Component: "Integration Manager", Total: 15, Passed: 5, Failed: 10, Coverage: 44},
	{Component: "API Routes", Total: 0, Passed: 0, Failed: 0, Coverage: 0},
	{Component: "Main Application", Total: 0, Passed: 0, Failed: 0, Coverage: 0},
}

// Records returns a copy of the literal coverage records in display order.
func Records() []Record {
	out := make([]Record, len(records))
	copy(out, records[:])
	return out
}

// Lookup returns the record for the named component.
func Lookup(component string) (Record, bool) {
	for _, r := range records {
		if r.Component == component {
			return r, true
		}
	}
	return Record{}, false
}

// VariantFor maps a coverage percentage to a badge variant:
// >= 75 is secondary, >= 50 is outline, anything lower is destructive.
func VariantFor(coverage int) Variant {
	switch {
	case coverage >= SecondaryThreshold:
		return VariantSecondary
	case coverage >= OutlineThreshold:
		return VariantOutline
	default:
		return VariantDestructive
	}
}

// Variant returns the badge variant for the record's coverage.
func (r Record) Variant() Variant {
	return VariantFor(r.Coverage)
}

// PassRate returns Passed/Total as a percentage. A record with no
// tests has a pass rate of 0.
func (r Record) PassRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Passed) / float64(r.Total) * 100
}
