package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable viper consults,
// e.g. XMLSCAN_SCAN_DIRECTORY for scan.directory.
const EnvPrefix = "XMLSCAN"

// Load reads configuration from the specified file path.
// An empty path skips the file and uses defaults plus environment variables.
func Load(configPath string) (*Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := substituteEnvVars(cfg); err != nil {
		return nil, fmt.Errorf("failed to substitute environment variables: %w", err)
	}

	return cfg, nil
}

// newViper returns a viper instance with defaults registered so that
// AutomaticEnv can resolve every key during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("scan.directory", d.Scan.Directory)
	v.SetDefault("scan.extension", d.Scan.Extension)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("output.max_cell_width", d.Output.MaxCellWidth)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)

	return v
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func substituteEnvVars(cfg *Config) error {
	cfg.Scan.Directory = expandEnvVar(cfg.Scan.Directory)
	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-empty values are applied.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Directory != "" {
		c.Scan.Directory = o.Directory
	}
	if o.Extension != "" {
		c.Scan.Extension = o.Extension
	}
	if o.Format != "" {
		c.Output.Format = o.Format
	}
	if o.NoColor {
		c.Output.Color = false
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
}

// Overrides carries command-line values that take precedence over the file.
type Overrides struct {
	Directory string
	Extension string
	Format    string
	NoColor   bool
	LogLevel  string
	LogFormat string
}
