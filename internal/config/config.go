// Package config provides configuration structures and loading for xmlscan.
package config

// Config represents the complete application configuration.
type Config struct {
	Scan    ScanConfig    `yaml:"scan" mapstructure:"scan"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// ScanConfig controls which files are scanned.
type ScanConfig struct {
	Directory string `yaml:"directory" mapstructure:"directory"`
	Extension string `yaml:"extension" mapstructure:"extension"` // case-sensitive filename suffix
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format       string `yaml:"format" mapstructure:"format"` // text, json, yaml, table
	Color        bool   `yaml:"color" mapstructure:"color"`
	MaxCellWidth int    `yaml:"max_cell_width" mapstructure:"max_cell_width"` // table only, 0 = unlimited
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Extension: ".xml",
		},
		Output: OutputConfig{
			Format:       "text",
			Color:        true,
			MaxCellWidth: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}
