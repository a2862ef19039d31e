package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/unbound-force/mcpreport/internal/page"
)

//go:embed templates/*
var templates embed.FS

var (
	layoutTmpl = template.Must(template.ParseFS(templates, "templates/layout.html"))
	pageTmpl   = template.Must(template.ParseFS(templates, "templates/page.html"))
)

type shellData struct {
	Meta    page.Meta
	CSS     template.CSS
	Content template.HTML
}

type pageData struct {
	Doc  page.Document
	Open map[string]bool
}

// RenderShell writes the root HTML document: metadata from meta, the
// global font and background style, and child placed unmodified inside
// <body>.
func RenderShell(w io.Writer, meta page.Meta, child template.HTML) error {
	css, err := templates.ReadFile("templates/style.css")
	if err != nil {
		return fmt.Errorf("reading CSS: %w", err)
	}
	if meta.Lang == "" {
		meta.Lang = "en"
	}

	//nolint:gosec // G203: CSS is an embedded asset
	data := shellData{
		Meta:    meta,
		CSS:     template.CSS(css),
		Content: child,
	}
	if err := layoutTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing layout template: %w", err)
	}
	return nil
}

// RenderView renders the report view (the <main> element) on its own.
// Sections listed in open start expanded; a nil map leaves every
// section collapsed.
func RenderView(doc page.Document, open map[string]bool) (template.HTML, error) {
	if open == nil {
		open = map[string]bool{}
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pageData{Doc: doc, Open: open}); err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}
	//nolint:gosec // G203: produced by html/template
	return template.HTML(buf.String()), nil
}

// WriteHTML writes the report as a self-contained HTML page. Each
// collapsible section is a <details> element that the browser toggles
// independently without script.
func WriteHTML(w io.Writer, doc page.Document, open map[string]bool) error {
	view, err := RenderView(doc, open)
	if err != nil {
		return err
	}
	return RenderShell(w, doc.Meta, view)
}
