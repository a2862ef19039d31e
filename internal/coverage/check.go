package coverage

import (
	"fmt"
	"math"
)

// DriftTolerance is how far, in percentage points, stored coverage may
// sit from the pass rate before Check notes it.
const DriftTolerance = 10.0

// FindingKind classifies a Check finding.
type FindingKind string

// Finding kinds.
const (
	FindingCountMismatch FindingKind = "CountMismatch"
	FindingCoverageDrift FindingKind = "CoverageDrift"
	FindingOutOfRange    FindingKind = "OutOfRange"
)

// Finding describes one inconsistency in a record. Findings are
// reported only; records are never corrected.
type Finding struct {
	Component string      `json:"component" yaml:"component"`
	Kind      FindingKind `json:"kind" yaml:"kind"`
	Message   string      `json:"message" yaml:"message"`
}

// Check inspects records for count mismatches (passed + failed > total),
// out-of-range values, and coverage that drifts from the pass rate.
func Check(records []Record) []Finding {
	var findings []Finding
	for _, r := range records {
		if r.Total < 0 || r.Passed < 0 || r.Failed < 0 ||
			r.Coverage < 0 || r.Coverage > 100 {
			findings = append(findings, Finding{
				Component: r.Component,
				Kind:      FindingOutOfRange,
				Message: fmt.Sprintf("total=%d passed=%d failed=%d coverage=%d",
					r.Total, r.Passed, r.Failed, r.Coverage),
			})
		}
		if r.Passed+r.Failed > r.Total {
			findings = append(findings, Finding{
				Component: r.Component,
				Kind:      FindingCountMismatch,
				Message: fmt.Sprintf("passed (%d) + failed (%d) exceeds total (%d)",
					r.Passed, r.Failed, r.Total),
			})
		}
		if r.Total > 0 {
			rate := r.PassRate()
			if math.Abs(float64(r.Coverage)-rate) > DriftTolerance {
				findings = append(findings, Finding{
					Component: r.Component,
					Kind:      FindingCoverageDrift,
					Message: fmt.Sprintf("coverage %d%% differs from pass rate %.1f%%",
						r.Coverage, rate),
				})
			}
		}
	}
	return findings
}

// CountOf returns how many findings have the given kind.
func CountOf(findings []Finding, kind FindingKind) int {
	n := 0
	for _, f := range findings {
		if f.Kind == kind {
			n++
		}
	}
	return n
}
