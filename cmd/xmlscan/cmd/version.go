package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/xmlscan/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and effective scan settings",
	Long: `Display build information together with the settings a scan would use:
the config file in effect, the filename suffix that selects files, and the
output format after environment and flag overrides.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	o := GetCLIOverrides()
	cfg.ApplyOverrides(config.Overrides{Extension: o.Extension, Format: o.Format})

	source := GetConfigFile()
	if source == "" {
		source = "none (defaults and " + config.EnvPrefix + "_* environment)"
	}

	cmd.Printf("xmlscan %s (commit %s, %s %s/%s)\n", Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	cmd.Printf("  Config file:    %s\n", source)
	cmd.Printf("  File suffix:    %s (case-sensitive, top level only)\n", cfg.Scan.Extension)
	cmd.Printf("  Output format:  %s\n", cfg.Output.Format)
	return nil
}
