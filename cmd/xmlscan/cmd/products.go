package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/xmlscan/internal/extract"
	"github.com/dbsmedya/xmlscan/internal/report"
)

var productsCmd = &cobra.Command{
	Use:   "products [DIR]",
	Short: "Extract product and promotion records",
	Long: `Products parses every XML file in DIR (top level only) and collects a
record for each <product> and <promotion> element, in document order.

  <product>   -> name, description, price
  <promotion> -> promotion_name, start_date, end_date

Values are copied as raw text. A file with a product or promotion that lacks
one of its fields is skipped entirely.

Example:
  xmlscan products ./exports
  xmlscan products --dir ./exports --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, args []string) error {
	cfg, log, ctx, cleanup, err := prepare(cmd, args)
	if err != nil {
		return err
	}
	defer cleanup()

	extractor := extract.NewProductExtractor(cfg.Scan.Directory, cfg.Scan.Extension, log)
	rep, err := extractor.Extract(ctx)
	if err != nil {
		return fmt.Errorf("product extraction failed: %w", err)
	}

	if err := report.New(cmd.OutOrStdout(), &cfg.Output).Products(rep); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return checkSkipped(len(rep.Skipped))
}
