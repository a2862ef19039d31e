package page

import (
	"reflect"
	"testing"

	"github.com/unbound-force/mcpreport/internal/coverage"
)

func TestNew_Deterministic(t *testing.T) {
	if !reflect.DeepEqual(New(), New()) {
		t.Error("New() should return identical documents on every call")
	}
}

func TestNew_Header(t *testing.T) {
	doc := New()
	if doc.Header.Title != "MCP Server Project - Test Report" {
		t.Errorf("unexpected title %q", doc.Header.Title)
	}
	if len(doc.Header.Badges) != 2 {
		t.Fatalf("expected 2 header badges, got %d", len(doc.Header.Badges))
	}
	if doc.Header.Badges[0].Label != "Version 1.0" || doc.Header.Badges[1].Label != "Test Suite" {
		t.Errorf("unexpected header badges: %+v", doc.Header.Badges)
	}
}

func TestNew_OverviewHasSevenItems(t *testing.T) {
	doc := New()
	if doc.Overview.Title != "Overview" {
		t.Errorf("unexpected overview title %q", doc.Overview.Title)
	}
	if len(doc.Overview.Items) != 7 {
		t.Errorf("expected 7 overview bullets, got %d", len(doc.Overview.Items))
	}
}

func TestNew_CoverageUsesLiteralRecords(t *testing.T) {
	doc := New()
	if !reflect.DeepEqual(doc.Coverage.Records, coverage.Records()) {
		t.Error("coverage card should carry the literal coverage records")
	}
	if len(doc.Coverage.Columns) != 5 {
		t.Errorf("expected 5 columns, got %d", len(doc.Coverage.Columns))
	}
}

func TestNew_SectionOrder(t *testing.T) {
	want := []string{SectionSuccessful, SectionFailed, SectionRecommendations, SectionConclusion}
	if got := New().SectionIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("section order = %v, want %v", got, want)
	}
}

func TestNew_FailedSectionGroups(t *testing.T) {
	s, ok := New().Section(SectionFailed)
	if !ok {
		t.Fatal("failed-tests section missing")
	}
	if s.Title != "Failed Tests and Issues" {
		t.Errorf("unexpected title %q", s.Title)
	}
	want := []string{
		"Injection Techniques", "Integration Manager", "Payload Manager",
		"WAF Bypass Module", "API Routes and Main Application",
		"External Payload Sources",
	}
	if len(s.Groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(s.Groups))
	}
	for i, g := range s.Groups {
		if g.Title != want[i] {
			t.Errorf("group %d: expected %q, got %q", i, want[i], g.Title)
		}
		if len(g.Items) == 0 {
			t.Errorf("group %q has no items", g.Title)
		}
	}
}

func TestNew_SectionBodies(t *testing.T) {
	doc := New()

	tests := []struct {
		id    string
		title string
		badge string
		items int
	}{
		{SectionSuccessful, "Successful Tests", "Passed", 6},
		{SectionRecommendations, "Recommendations", "Info", 7},
		{SectionConclusion, "Conclusion", "Summary", 0},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s, ok := doc.Section(tt.id)
			if !ok {
				t.Fatalf("section %q missing", tt.id)
			}
			if s.Title != tt.title {
				t.Errorf("title = %q, want %q", s.Title, tt.title)
			}
			if s.Badge.Label != tt.badge {
				t.Errorf("badge = %q, want %q", s.Badge.Label, tt.badge)
			}
			if len(s.Items) != tt.items {
				t.Errorf("items = %d, want %d", len(s.Items), tt.items)
			}
		})
	}

	conclusion, _ := doc.Section(SectionConclusion)
	if conclusion.Paragraph == "" {
		t.Error("conclusion should have a paragraph")
	}
}

func TestSection_Unknown(t *testing.T) {
	if _, ok := New().Section("start-scan"); ok {
		t.Error("expected unknown section lookup to fail")
	}
}
