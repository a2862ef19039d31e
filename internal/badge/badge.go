// Package badge renders shields-style SVG coverage badges whose colour
// follows the report's badge variant thresholds.
package badge

import (
	"fmt"
	"html"

	"github.com/unbound-force/mcpreport/internal/coverage"
)

// Colour returns the badge fill colour for a variant.
func Colour(v coverage.Variant) string {
	switch v {
	case coverage.VariantSecondary:
		return "#4c1"
	case coverage.VariantOutline:
		return "#dfb317"
	default:
		return "#e05d44"
	}
}

// SVG creates the SVG content for a coverage badge. Coverage is clamped
// to 0-100.
func SVG(pct int) string {
	return SVGWithLabel("coverage", pct)
}

// SVGWithLabel is SVG with a custom left-hand label.
func SVGWithLabel(label string, pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	label = html.EscapeString(label)
	color := Colour(coverage.VariantFor(pct))
	value := fmt.Sprintf("%d%%", pct)

	// Approximate Verdana 11px: ~7px per character plus padding.
	leftWidth := 7*len(label) + 10
	rightWidth := 7*len(value) + 10
	height := 20
	totalWidth := leftWidth + rightWidth

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" role="img" aria-label="%s: %s">
  <title>%s: %s</title>
  <g shape-rendering="crispEdges">
    <rect width="%d" height="%d" fill="#555"/>
    <rect x="%d" width="%d" height="%d" fill="%s"/>
  </g>
  <g fill="#fff" text-anchor="middle" font-family="Verdana,Geneva,DejaVu Sans,sans-serif" text-rendering="geometricPrecision" font-size="11">
    <text aria-hidden="true" x="%d" y="15" fill="#010101" fill-opacity=".3">%s</text>
    <text x="%d" y="14">%s</text>
    <text aria-hidden="true" x="%d" y="15" fill="#010101" fill-opacity=".3">%s</text>
    <text x="%d" y="14">%s</text>
  </g>
</svg>`,
		totalWidth, height, label, value,
		label, value,
		leftWidth, height,
		leftWidth, rightWidth, height, color,
		leftWidth/2, label,
		leftWidth/2, label,
		leftWidth+rightWidth/2, value,
		leftWidth+rightWidth/2, value,
	)
}
