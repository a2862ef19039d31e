package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unbound-force/mcpreport/internal/accordion"
	"github.com/unbound-force/mcpreport/internal/page"
)

// ---------------------------------------------------------------------------
// runRender tests
// ---------------------------------------------------------------------------

func TestRunRender_InvalidFormat(t *testing.T) {
	err := runRender(renderParams{
		format: "pdf",
		stdout: &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error for invalid format")
	}
	if !strings.Contains(err.Error(), `invalid format "pdf"`) {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestRunRender_HTMLDefault(t *testing.T) {
	var stdout bytes.Buffer
	if err := runRender(renderParams{format: "html", stdout: &stdout}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Errorf("expected an HTML document, got:\n%.200s", out)
	}
	if strings.Contains(out, " open>") {
		t.Error("sections should be collapsed by default")
	}
}

func TestRunRender_TextExpandAll(t *testing.T) {
	var stdout bytes.Buffer
	err := runRender(renderParams{
		format: "text",
		expand: []string{"all"},
		stdout: &stdout,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{
		"Core MCP server initialization",
		"External Payload Sources",
		"Increase test coverage for main.py",
		"solid foundation",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expanded text output missing %q", want)
		}
	}
}

func TestRunRender_JSON(t *testing.T) {
	var stdout bytes.Buffer
	if err := runRender(renderParams{format: "json", stdout: &stdout}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(stdout.Bytes(), &parsed); err != nil {
		t.Errorf("output is not valid JSON: %v\noutput:\n%s", err, stdout.String())
	}
	if _, ok := parsed["report"]; !ok {
		t.Errorf("JSON output missing 'report' key")
	}
}

func TestRunRender_YAML(t *testing.T) {
	var stdout bytes.Buffer
	if err := runRender(renderParams{format: "yaml", stdout: &stdout}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "title: MCP Server Project - Test Report") {
		t.Errorf("unexpected YAML output:\n%s", stdout.String())
	}
}

func TestRunRender_UnknownSection(t *testing.T) {
	err := runRender(renderParams{
		format: "text",
		expand: []string{"start-scan"},
		stdout: &bytes.Buffer{},
	})
	if !errors.Is(err, accordion.ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed-tests") {
		t.Errorf("error should list valid sections: %s", err)
	}
}

func TestRunRender_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	var stdout bytes.Buffer
	if err := runRender(renderParams{format: "html", output: path, stdout: &stdout}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.Len() != 0 {
		t.Error("nothing should be written to stdout when --output is set")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "Test Coverage Summary") {
		t.Error("output file missing report content")
	}
}

func TestExpandedSet(t *testing.T) {
	doc := page.New()

	set, err := expandedSet(doc, []string{page.SectionFailed, page.SectionFailed})
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 1 || !set[page.SectionFailed] {
		t.Errorf("unexpected set: %v", set)
	}

	set, err = expandedSet(doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 0 {
		t.Errorf("expected nothing expanded, got %v", set)
	}
}

// ---------------------------------------------------------------------------
// runCheck tests
// ---------------------------------------------------------------------------

func TestRunCheck_ReportsDrift(t *testing.T) {
	var stdout bytes.Buffer
	if err := runCheck(checkParams{stdout: &stdout}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "Payload Manager") || !strings.Contains(out, "Integration Manager") {
		t.Errorf("expected drift findings in output:\n%s", out)
	}
}

func TestRunCheck_StrictPassesOnLiteralData(t *testing.T) {
	// Drift alone does not fail strict mode; the literal counts are
	// consistent.
	if err := runCheck(checkParams{strict: true, stdout: &bytes.Buffer{}}); err != nil {
		t.Errorf("strict check should pass on literal data, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// command wiring tests
// ---------------------------------------------------------------------------

func TestSchemaCmd(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"schema"})
	if err := root.Execute(); err != nil {
		t.Fatalf("schema command failed: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &parsed); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if parsed["title"] != "MCP Server Test Report" {
		t.Errorf("unexpected schema title: %v", parsed["title"])
	}
}

func TestRenderCmd_Flags(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"render", "--format", "text", "--expand", "conclusion"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render command failed: %v", err)
	}
	if !strings.Contains(out.String(), "solid foundation") {
		t.Errorf("expected conclusion body in output:\n%s", out.String())
	}
}

func TestLoadServeConfig_Env(t *testing.T) {
	t.Setenv("MCPREPORT_LISTEN", "127.0.0.1:9999")
	t.Setenv("MCPREPORT_CORS_ORIGINS", "https://a.example,https://b.example")

	cmd := newServeCmd()
	cfg, err := loadServeConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != "127.0.0.1:9999" {
		t.Errorf("expected listen from env, got %q", cfg.Listen)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 CORS origins from env, got %v", cfg.CORSOrigins)
	}
}

func TestLoadServeConfig_FlagWins(t *testing.T) {
	t.Setenv("MCPREPORT_LISTEN", "127.0.0.1:9999")

	cmd := newServeCmd()
	if err := cmd.Flags().Set("listen", "127.0.0.1:7777"); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadServeConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != "127.0.0.1:7777" {
		t.Errorf("expected explicit flag to win, got %q", cfg.Listen)
	}
}

func TestExportCmd(t *testing.T) {
	dir := t.TempDir()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"export", "--dir", dir})
	if err := root.Execute(); err != nil {
		t.Fatalf("export command failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		t.Errorf("index.html not exported: %v", err)
	}
	if !strings.Contains(out.String(), "Report exported to") {
		t.Errorf("unexpected summary:\n%s", out.String())
	}
}
