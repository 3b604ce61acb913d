package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile      string
	scanDir      string
	extension    string
	outputFormat string
	noColor      bool
	logLevel     string
	logFormat    string
	failOnSkip   bool
)

var rootCmd = &cobra.Command{
	Use:   "xmlscan",
	Short: "Extract records and stored procedure references from XML exports",
	Long: `xmlscan walks a folder of XML files and reports what it finds.

Commands:
  - products:   <product> and <promotion> records per file
  - procedures: stored procedures referenced as EXEC/SP_ [name] in element text

Files that are malformed or incomplete are skipped and listed at the end;
they never stop the rest of the scan.`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (optional)")

	// Scan overrides
	rootCmd.PersistentFlags().StringVarP(&scanDir, "dir", "d", "",
		"Directory to scan (a positional argument takes precedence)")
	rootCmd.PersistentFlags().StringVar(&extension, "ext", "",
		"Override file suffix to scan (default .xml, case-sensitive)")

	// Output overrides
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "o", "",
		"Override output format (text, json, yaml, table)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&failOnSkip, "fail-on-skip", false,
		"Exit with an error if any file was skipped")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	Directory  string
	Extension  string
	Format     string
	NoColor    bool
	LogLevel   string
	LogFormat  string
	FailOnSkip bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		Directory:  scanDir,
		Extension:  extension,
		Format:     outputFormat,
		NoColor:    noColor,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		FailOnSkip: failOnSkip,
	}
}
