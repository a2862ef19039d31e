// Package export writes the test report as a static site: the HTML page,
// its JSON and YAML renderings, the JSON Schema and one coverage badge
// per component.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/unbound-force/mcpreport/internal/badge"
	"github.com/unbound-force/mcpreport/internal/page"
	"github.com/unbound-force/mcpreport/internal/report"
)

// Options configures the export operation.
type Options struct {
	// TargetDir is the directory to export into. It is created if
	// missing. Defaults to "site".
	TargetDir string

	// Force overwrites existing files when true.
	// When false, existing files are skipped.
	Force bool

	// Version is recorded in the JSON output and the HTML marker.
	// Defaults to "dev".
	Version string

	// Stdout is the writer for summary output.
	// Defaults to os.Stdout.
	Stdout io.Writer
}

// Result reports what the export operation did.
type Result struct {
	// Created lists files that were written for the first time.
	Created []string

	// Skipped lists files that already existed and were not
	// overwritten (Force was false).
	Skipped []string

	// Overwritten lists files that existed and were replaced
	// (Force was true).
	Overwritten []string
}

// versionMarker returns the comment prepended to the exported HTML.
func versionMarker(version string) string {
	return fmt.Sprintf("<!-- generated by mcpreport %s -->\n", version)
}

// Slug turns a component name into a file name stem.
func Slug(component string) string {
	return strings.ToLower(strings.Join(strings.Fields(component), "-"))
}

// Files renders every exported file, keyed by path relative to the
// target directory.
func Files(doc page.Document, version string) (map[string][]byte, error) {
	files := make(map[string][]byte)

	var buf bytes.Buffer
	buf.WriteString(versionMarker(version))
	if err := report.WriteHTML(&buf, doc, nil); err != nil {
		return nil, err
	}
	files["index.html"] = bytes.Clone(buf.Bytes())

	buf.Reset()
	if err := report.WriteJSON(&buf, doc, version); err != nil {
		return nil, fmt.Errorf("rendering JSON: %w", err)
	}
	files["report.json"] = bytes.Clone(buf.Bytes())

	buf.Reset()
	if err := report.WriteYAML(&buf, doc); err != nil {
		return nil, err
	}
	files["report.yaml"] = bytes.Clone(buf.Bytes())

	files["report.schema.json"] = []byte(report.Schema + "\n")

	for _, r := range doc.Coverage.Records {
		name := filepath.Join("badges", Slug(r.Component)+".svg")
		files[name] = []byte(badge.SVG(r.Coverage))
	}

	return files, nil
}

// Run exports the report into opts.TargetDir. If a file already exists
// and opts.Force is false, the file is skipped. Run returns a Result
// summarizing what was created, skipped, or overwritten.
func Run(doc page.Document, opts Options) (*Result, error) {
	if opts.TargetDir == "" {
		opts.TargetDir = "site"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	files, err := Files(doc, opts.Version)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	result := &Result{}
	for _, rel := range paths {
		outPath := filepath.Join(opts.TargetDir, rel)

		_, statErr := os.Stat(outPath)
		exists := statErr == nil

		if exists && !opts.Force {
			result.Skipped = append(result.Skipped, rel)
			continue
		}

		dir := filepath.Dir(outPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}

		if err := os.WriteFile(outPath, files[rel], 0o644); err != nil { //nolint:gosec // G306: site files are meant to be readable
			return nil, fmt.Errorf("creating %s: %w", rel, err)
		}

		if exists {
			result.Overwritten = append(result.Overwritten, rel)
		} else {
			result.Created = append(result.Created, rel)
		}
	}

	printSummary(opts.Stdout, opts.TargetDir, result)

	return result, nil
}

// printSummary writes a human-readable summary of the export to w.
func printSummary(w io.Writer, dir string, r *Result) {
	fmt.Fprintf(w, "Report exported to %s:\n", dir)

	for _, f := range r.Created {
		fmt.Fprintf(w, "  created: %s\n", f)
	}
	for _, f := range r.Skipped {
		fmt.Fprintf(w, "  skipped: %s (already exists)\n", f)
	}
	for _, f := range r.Overwritten {
		fmt.Fprintf(w, "  overwritten: %s\n", f)
	}

	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "%d file(s) skipped (use --force to overwrite).\n", len(r.Skipped))
	}
}
