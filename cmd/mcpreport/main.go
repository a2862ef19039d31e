package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/unbound-force/mcpreport/internal/accordion"
	"github.com/unbound-force/mcpreport/internal/coverage"
	"github.com/unbound-force/mcpreport/internal/page"
	"github.com/unbound-force/mcpreport/internal/report"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

var formats = []string{"html", "text", "json", "yaml"}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "mcpreport",
		Short: "Render the MCP server project test report",
		Long: `mcpreport renders the MCP server project test report: a fixed
summary of test counts and coverage per component, with collapsible
sections for successful tests, failures, recommendations and the
conclusion.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newSchemaCmd())

	return root
}

// renderParams holds the parsed flags for the render command.
type renderParams struct {
	format string
	output string
	expand []string
	stdout io.Writer
}

// runRender is the extracted, testable body of the render command.
func runRender(p renderParams) error {
	if !validFormat(p.format) {
		return fmt.Errorf("invalid format %q: must be one of %s",
			p.format, strings.Join(formats, ", "))
	}

	doc := page.New()
	open, err := expandedSet(doc, p.expand)
	if err != nil {
		return err
	}

	w := p.stdout
	if p.output != "" && p.output != "-" {
		f, err := os.Create(p.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	logger.Debug("rendering report", "format", p.format, "expanded", len(open))

	if err := writeReport(w, p.format, doc, open); err != nil {
		return err
	}

	if p.output != "" && p.output != "-" {
		logger.Info("report written", "path", p.output, "format", p.format)
	}
	return nil
}

// writeReport outputs the report in the requested format.
func writeReport(w io.Writer, format string, doc page.Document, open map[string]bool) error {
	switch format {
	case "text":
		return report.WriteText(w, doc, open)
	case "json":
		return report.WriteJSON(w, doc, version)
	case "yaml":
		return report.WriteYAML(w, doc)
	default:
		return report.WriteHTML(w, doc, open)
	}
}

func validFormat(format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

// expandedSet resolves --expand values against the document's sections.
// "all" expands every section.
func expandedSet(doc page.Document, ids []string) (map[string]bool, error) {
	acc := accordion.New(doc.SectionIDs()...)
	for _, id := range ids {
		if id == "all" {
			for _, all := range acc.IDs() {
				if err := acc.Expand(all); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := acc.Expand(id); err != nil {
			return nil, fmt.Errorf("--expand: %w (valid: %s, all)",
				err, strings.Join(acc.IDs(), ", "))
		}
	}
	return acc.Set(), nil
}

func newRenderCmd() *cobra.Command {
	var (
		format string
		output string
		expand []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the test report",
		Long: `Render the test report as a self-contained HTML page (default),
styled terminal text, JSON or YAML. Collapsible sections start
collapsed; use --expand to open them in text and HTML output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(renderParams{
				format: format,
				output: output,
				expand: expand,
				stdout: cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "html",
		"output format: html, text, json, or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"write to file instead of stdout")
	cmd.Flags().StringSliceVar(&expand, "expand", nil,
		"sections to expand (successful-tests, failed-tests, recommendations, conclusion, all)")

	return cmd
}

// checkParams holds the parsed flags for the check command.
type checkParams struct {
	strict bool
	stdout io.Writer
}

// runCheck prints consistency findings for the coverage records. Only
// count mismatches fail in strict mode; coverage drift is informational.
func runCheck(p checkParams) error {
	findings := coverage.Check(coverage.Records())
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Kind < findings[j].Kind
	})

	logger.Debug("checked coverage records", "findings", len(findings))

	if err := report.WriteFindings(p.stdout, findings); err != nil {
		return err
	}

	if n := coverage.CountOf(findings, coverage.FindingCountMismatch) +
		coverage.CountOf(findings, coverage.FindingOutOfRange); p.strict && n > 0 {
		return fmt.Errorf("%d coverage record(s) have inconsistent counts", n)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report inconsistencies in the coverage records",
		Long: `Check every coverage record for passed + failed exceeding the
total, out-of-range values, and stored coverage that drifts from the
pass rate. Findings are reported; records are never corrected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(checkParams{
				strict: strict,
				stdout: cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false,
		"exit non-zero when counts are inconsistent")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the report output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of mcpreport render --format=json output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
