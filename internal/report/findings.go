package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/mcpreport/internal/coverage"
)

// WriteFindings writes coverage consistency findings as a styled table
// followed by a one-line summary.
func WriteFindings(w io.Writer, findings []coverage.Finding) error {
	s := DefaultStyles()

	if len(findings) == 0 {
		_, err := fmt.Fprintln(w, s.Pass.Render("No inconsistencies found."))
		return err
	}

	const maxMsg = 44
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		msg := f.Message
		if len(msg) > maxMsg {
			msg = msg[:maxMsg-3] + "..."
		}
		rows = append(rows, []string{f.Component, string(f.Kind), msg})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if col == 1 && row >= 0 && row < len(findings) {
				if findings[row].Kind == coverage.FindingCoverageDrift {
					return s.Outline
				}
				return s.Destructive
			}
			return s.TableCell
		}).
		Headers("COMPONENT", "KIND", "DETAIL").
		Rows(rows...)

	fmt.Fprintln(w, t)
	_, err := fmt.Fprintf(w, "%s\n", s.Title.Render(fmt.Sprintf(
		"%d finding(s): %d count mismatch(es), %d coverage drift(s), %d out of range",
		len(findings),
		coverage.CountOf(findings, coverage.FindingCountMismatch),
		coverage.CountOf(findings, coverage.FindingCoverageDrift),
		coverage.CountOf(findings, coverage.FindingOutOfRange))))
	return err
}
