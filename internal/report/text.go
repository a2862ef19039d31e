package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/mcpreport/internal/page"
)

// textWidth is the column budget for terminal output.
const textWidth = 80

// Section header markers.
const (
	collapsedMarker = "▸"
	expandedMarker  = "▾"
)

// WriteText writes the report as human-readable styled text. Sections
// named in expanded show their body; all others show only their header.
func WriteText(w io.Writer, doc page.Document, expanded map[string]bool) error {
	s := DefaultStyles()

	var sb strings.Builder
	sb.WriteString(RenderHeader(doc, s))
	sb.WriteString("\n\n")
	sb.WriteString(RenderOverview(doc, s))
	sb.WriteString("\n\n")
	sb.WriteString(RenderCoverage(doc, s))
	sb.WriteString("\n")
	for _, sec := range doc.Sections {
		sb.WriteString("\n")
		sb.WriteString(RenderSection(sec, expanded[sec.ID], s))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderHeader renders the title, subtitle and header badges.
func RenderHeader(doc page.Document, s Styles) string {
	badges := make([]string, 0, len(doc.Header.Badges))
	for _, b := range doc.Header.Badges {
		badges = append(badges, s.Badge(b.Label, b.Variant))
	}
	return strings.Join([]string{
		s.Title.Render(doc.Header.Title),
		s.Body.Render(s.Subtitle.Render(doc.Header.Subtitle)),
		strings.Join(badges, " "),
	}, "\n")
}

// RenderOverview renders the overview card.
func RenderOverview(doc page.Document, s Styles) string {
	var sb strings.Builder
	sb.WriteString(s.CardTitle.Render(doc.Overview.Title))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(doc.Overview.Description))
	sb.WriteString("\n")
	sb.WriteString(renderBullets(doc.Overview.Items, "  ", s))
	return sb.String()
}

// RenderCoverage renders the coverage card with its table.
func RenderCoverage(doc page.Document, s Styles) string {
	recs := doc.Coverage.Records
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			r.Component,
			strconv.Itoa(r.Total),
			strconv.Itoa(r.Passed),
			strconv.Itoa(r.Failed),
			fmt.Sprintf("%d%%", r.Coverage),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if row < 0 || row >= len(recs) {
				return s.TableCell
			}
			switch col {
			case 2:
				return s.Pass.Align(lipgloss.Right)
			case 3:
				return s.Fail.Align(lipgloss.Right)
			case 4:
				return s.VariantStyle(recs[row].Variant()).Align(lipgloss.Right)
			case 1:
				return s.TableCell.Align(lipgloss.Right)
			}
			return s.TableCell
		}).
		Headers(doc.Coverage.Columns...).
		Rows(rows...)

	var sb strings.Builder
	sb.WriteString(s.CardTitle.Render(doc.Coverage.Title))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(doc.Coverage.Description))
	sb.WriteString("\n")
	sb.WriteString(t.String())
	return sb.String()
}

// RenderSection renders one collapsible section. A collapsed section is
// a single header line.
func RenderSection(sec page.Section, expanded bool, s Styles) string {
	marker := collapsedMarker
	if expanded {
		marker = expandedMarker
	}
	header := fmt.Sprintf("%s %s %s", marker,
		s.Badge(sec.Badge.Label, sec.Badge.Variant),
		s.CardTitle.Render(sec.Title))
	if !expanded {
		return header
	}

	var sb strings.Builder
	sb.WriteString(header)
	if len(sec.Items) > 0 {
		sb.WriteString("\n")
		sb.WriteString(renderBullets(sec.Items, "    ", s))
	}
	for _, g := range sec.Groups {
		sb.WriteString("\n    ")
		sb.WriteString(s.CardTitle.Render(g.Title))
		sb.WriteString("\n")
		sb.WriteString(renderBullets(g.Items, "      ", s))
	}
	if sec.Paragraph != "" {
		sb.WriteString("\n")
		sb.WriteString(indent(s.Body.Render(s.Muted.Render(sec.Paragraph)), "    "))
	}
	return sb.String()
}

func renderBullets(items []string, prefix string, s Styles) string {
	body := s.Body.Width(textWidth - len(prefix) - 2)
	lines := make([]string, 0, len(items))
	for _, item := range items {
		wrapped := strings.Split(body.Render(item), "\n")
		for i, l := range wrapped {
			l = strings.TrimRight(l, " ")
			if i == 0 {
				lines = append(lines, prefix+"• "+l)
			} else {
				lines = append(lines, prefix+"  "+l)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
