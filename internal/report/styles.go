package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/unbound-force/mcpreport/internal/coverage"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Title is used for the report title.
	Title lipgloss.Style

	// Subtitle is used for the line under the title.
	Subtitle lipgloss.Style

	// CardTitle is used for card and section titles.
	CardTitle lipgloss.Style

	// Secondary, Outline and Destructive color-code badge variants.
	Secondary   lipgloss.Style
	Outline     lipgloss.Style
	Destructive lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Pass styles passed counts.
	Pass lipgloss.Style

	// Fail styles failed counts.
	Fail lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Focus highlights the section under the cursor in the browser.
	Focus lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style

	// Body wraps bullet and paragraph text.
	Body lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		CardTitle: lipgloss.NewStyle().Bold(true),

		Secondary:   lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		Outline:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Destructive: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		Pass: lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		Fail: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Focus: lipgloss.NewStyle().Reverse(true),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Body: lipgloss.NewStyle().Width(textWidth - 4),
	}
}

// VariantStyle returns the style for a badge variant.
func (s Styles) VariantStyle(v coverage.Variant) lipgloss.Style {
	switch v {
	case coverage.VariantSecondary:
		return s.Secondary
	case coverage.VariantOutline:
		return s.Outline
	case coverage.VariantDestructive:
		return s.Destructive
	default:
		return s.Muted
	}
}

// Badge renders a bracketed badge label in its variant style.
func (s Styles) Badge(label string, v coverage.Variant) string {
	return s.VariantStyle(v).Render("[" + label + "]")
}
