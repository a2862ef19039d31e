package main

import (
	"github.com/spf13/cobra"

	"github.com/unbound-force/mcpreport/internal/export"
	"github.com/unbound-force/mcpreport/internal/page"
)

func newExportCmd() *cobra.Command {
	var (
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the report as a static site",
		Long: `Write index.html, report.json, report.yaml, report.schema.json
and one coverage badge per component under badges/ into a directory.
Existing files are skipped unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := export.Run(page.New(), export.Options{
				TargetDir: dir,
				Force:     force,
				Version:   version,
				Stdout:    cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			logger.Debug("export complete",
				"created", len(res.Created),
				"skipped", len(res.Skipped),
				"overwritten", len(res.Overwritten))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "site", "target directory")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}
