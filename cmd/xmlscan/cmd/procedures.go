package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/xmlscan/internal/extract"
	"github.com/dbsmedya/xmlscan/internal/report"
)

var proceduresCmd = &cobra.Command{
	Use:   "procedures [DIR]",
	Short: "Find stored procedure references in element text",
	Long: `Procedures parses every XML file in DIR (top level only) and matches
the text directly inside each element against:

  EXEC or SP_ (any case), optional whitespace, optional [schema]. qualifier,
  then a bracketed [name]

The bracketed name is reported. This is a heuristic, not a SQL parser.
Output lists the union of all names, then the names found in each file.
Run with --log-level debug to see every text fragment checked.

Example:
  xmlscan procedures ./reports
  xmlscan procedures ./reports --format table`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcedures,
}

func init() {
	rootCmd.AddCommand(proceduresCmd)
}

func runProcedures(cmd *cobra.Command, args []string) error {
	cfg, log, ctx, cleanup, err := prepare(cmd, args)
	if err != nil {
		return err
	}
	defer cleanup()

	finder := extract.NewProcedureFinder(cfg.Scan.Directory, cfg.Scan.Extension, log)
	rep, err := finder.Find(ctx)
	if err != nil {
		return fmt.Errorf("procedure scan failed: %w", err)
	}

	if err := report.New(cmd.OutOrStdout(), &cfg.Output).Procedures(rep); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return checkSkipped(len(rep.Skipped))
}
