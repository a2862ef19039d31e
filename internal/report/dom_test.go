package report

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/unbound-force/mcpreport/internal/page"
)

// renderDOM renders the full report page and parses it.
func renderDOM(t *testing.T, open map[string]bool) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteHTML(&buf, page.New(), open); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("rendered HTML does not parse: %v", err)
	}
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byTag(tags ...string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, tag := range tags {
			if n.Data == tag {
				return true
			}
		}
		return false
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// textOf returns the whitespace-collapsed text content of n.
func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func headings(doc *html.Node) []string {
	var out []string
	for _, n := range findAll(doc, byTag("h1", "h2", "h3", "h4", "h5", "h6")) {
		out = append(out, textOf(n))
	}
	return out
}

// buttons returns the accessible names of elements exposed as buttons:
// <button>, <summary> and button-typed inputs.
func buttons(doc *html.Node) []string {
	var out []string
	for _, n := range findAll(doc, byTag("button", "summary", "input")) {
		if n.Data == "input" {
			typ, _ := attr(n, "type")
			if typ != "button" && typ != "submit" {
				continue
			}
			v, _ := attr(n, "value")
			out = append(out, v)
			continue
		}
		out = append(out, textOf(n))
	}
	return out
}
