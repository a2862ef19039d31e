// Package page holds the content of the MCP server test report: header,
// overview, coverage table and the four collapsible sections. All content
// is literal; New assembles it into a Document.
package page

import (
	"github.com/unbound-force/mcpreport/internal/coverage"
)

// Section identifiers, in display order.
const (
	SectionSuccessful      = "successful-tests"
	SectionFailed          = "failed-tests"
	SectionRecommendations = "recommendations"
	SectionConclusion      = "conclusion"
)

// Meta is the document metadata applied by the root shell.
type Meta struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Lang        string `json:"lang" yaml:"lang"`
}

// Badge is a small labelled marker with a visual variant.
type Badge struct {
	Label   string           `json:"label" yaml:"label"`
	Variant coverage.Variant `json:"variant" yaml:"variant"`
}

// Header is the title block at the top of the report.
type Header struct {
	Title    string  `json:"title" yaml:"title"`
	Subtitle string  `json:"subtitle" yaml:"subtitle"`
	Badges   []Badge `json:"badges" yaml:"badges"`
}

// Card is a titled panel with an optional description.
type Card struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []string `json:"items,omitempty" yaml:"items,omitempty"`
}

// CoverageCard is the card wrapping the coverage table.
type CoverageCard struct {
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description" yaml:"description"`
	Columns     []string          `json:"columns" yaml:"columns"`
	Records     []coverage.Record `json:"records" yaml:"records"`
}

// Section is one collapsible region. Its body is either a bullet list,
// a set of titled groups, or a paragraph.
type Section struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Badge     Badge    `json:"badge" yaml:"badge"`
	Items     []string `json:"items,omitempty" yaml:"items,omitempty"`
	Groups    []Card   `json:"groups,omitempty" yaml:"groups,omitempty"`
	Paragraph string   `json:"paragraph,omitempty" yaml:"paragraph,omitempty"`
}

// Document is everything the report view renders, in order.
type Document struct {
	Meta     Meta         `json:"meta" yaml:"meta"`
	Header   Header       `json:"header" yaml:"header"`
	Overview Card         `json:"overview" yaml:"overview"`
	Coverage CoverageCard `json:"coverage" yaml:"coverage"`
	Sections []Section    `json:"sections" yaml:"sections"`
}

// Section returns the section with the given id.
func (d Document) Section(id string) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SectionIDs returns the section ids in display order.
func (d Document) SectionIDs() []string {
	ids := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

// New builds the report document. The result is deterministic.
func New() Document {
	return Document{
		Meta: Meta{
			Title:       "MCP Server Project - Test Report",
			Description: "Comprehensive test coverage and results for the advanced MCP server project",
			Lang:        "en",
		},
		Header: Header{
			Title:    "MCP Server Project - Test Report",
			Subtitle: "Comprehensive test coverage and results summary for the advanced MCP server project",
			Badges: []Badge{
				{Label: "Version 1.0", Variant: coverage.VariantOutline},
				{Label: "Test Suite", Variant: coverage.VariantSecondary},
			},
		},
		Overview: Card{
			Title:       "Overview",
			Description: "Project components and their testing status",
			Items: []string{
				"Core MCP server with SQLMap integration",
				"Injection techniques module",
				"WAF bypass module",
				"Payload management system",
				"Integration manager with Deepseek API and Open WebUI",
				"API routes and main application entry point",
				"Comprehensive test suite covering unit and integration tests",
			},
		},
		Coverage: CoverageCard{
			Title:       "Test Coverage Summary",
			Description: "Detailed breakdown of test results by component",
			Columns:     []string{"Component", "Total Tests", "Passed", "Failed", "Coverage %"},
			Records:     coverage.Records(),
		},
		Sections: []Section{
			successfulSection(),
			failedSection(),
			recommendationsSection(),
			conclusionSection(),
		},
	}
}

func successfulSection() Section {
	return Section{
		ID:    SectionSuccessful,
		Title: "Successful Tests",
		Badge: Badge{Label: "Passed", Variant: coverage.VariantSecondary},
		Items: []string{
			"Core MCP server initialization and SQLMap command execution.",
			"Basic injection techniques: blind, union, stacked, stored procedure, out-of-band, NoSQL.",
			"WAF bypass techniques: multiple individual techniques and combined tampering.",
			"Payload manager: adding custom payloads, retrieving payloads by source and category.",
			"Integration manager: initialization and basic Deepseek API communication (mocked).",
			"API routes: basic endpoint functionality (manual testing recommended).",
		},
	}
}

func failedSection() Section {
	return Section{
		ID:    SectionFailed,
		Title: "Failed Tests and Issues",
		Badge: Badge{Label: "Failed", Variant: coverage.VariantDestructive},
		Groups: []Card{
			{
				Title: "Injection Techniques",
				Items: []string{
					"Handling invalid injection technique did not raise expected exceptions.",
					"Deepseek analysis method missing in InjectionHandler.",
					"Error handling test expecting failure but success returned.",
				},
			},
			{
				Title: "Integration Manager",
				Items: []string{
					"Async fixture usage issues causing test failures.",
					"Attribute errors due to coroutine objects not awaited.",
					"Missing or incorrect method implementations in tests.",
				},
			},
			{
				Title: "Payload Manager",
				Items: []string{
					"Tests calling non-existent private methods (_load_fuzzdb_payloads, _load_pat_payloads, _load_nosql_payloads).",
					"Search payloads test failed due to incorrect assertions.",
					"Persistence test failed due to unexpected payload count.",
					"Deepseek analysis method missing in PayloadManager.",
				},
			},
			{
				Title: "WAF Bypass Module",
				Items: []string{
					"Tests calling non-existent public methods (apply_whitespace_bypass etc.) instead of private methods.",
					"Deepseek analysis test incorrectly using pytest fixture as context manager.",
				},
			},
			{
				Title: "API Routes and Main Application",
				Items: []string{
					"No automated tests implemented yet; manual testing recommended.",
				},
			},
			{
				Title: "External Payload Sources",
				Items: []string{
					"Multiple 404 errors when loading payloads from GitHub raw URLs indicating outdated or moved resources.",
				},
			},
		},
	}
}

func recommendationsSection() Section {
	return Section{
		ID:    SectionRecommendations,
		Title: "Recommendations",
		Badge: Badge{Label: "Info", Variant: coverage.VariantOutline},
		Items: []string{
			"Fix test implementations to match current method names and async usage.",
			"Implement API route tests using HTTP client libraries (e.g., httpx).",
			"Add end-to-end tests simulating real SQLMap scans and Deepseek API responses.",
			"Update payload source URLs or provide local payload files to avoid 404 errors.",
			"Add security and authentication tests if applicable.",
			"Increase test coverage for main.py and API routes.",
			"Address warnings related to async fixtures and pytest-asyncio usage.",
		},
	}
}

func conclusionSection() Section {
	return Section{
		ID:    SectionConclusion,
		Title: "Conclusion",
		Badge: Badge{Label: "Summary", Variant: coverage.VariantSecondary},
		Paragraph: "The project has a solid foundation with many core components tested successfully. " +
			"Some tests require fixes due to code changes and async handling. " +
			"External resource availability affects payload loading tests. " +
			"With the recommended fixes and additional tests, the project will achieve robust test coverage and reliability.",
	}
}
