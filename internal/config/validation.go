package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateScan()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateScan() ValidationErrors {
	var errors ValidationErrors

	if c.Scan.Directory == "" {
		errors = append(errors, ValidationError{
			Field:   "scan.directory",
			Message: "directory is required (argument, --dir, config file or " + EnvPrefix + "_SCAN_DIRECTORY)",
		})
	}

	if c.Scan.Extension == "" {
		errors = append(errors, ValidationError{
			Field:   "scan.extension",
			Message: "extension is required",
		})
	} else if !strings.HasPrefix(c.Scan.Extension, ".") {
		errors = append(errors, ValidationError{
			Field:   "scan.extension",
			Message: "extension must start with '.'",
		})
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	validFormats := map[string]bool{"text": true, "json": true, "yaml": true, "table": true, "": true}
	if !validFormats[c.Output.Format] {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Message: "format must be 'text', 'json', 'yaml', or 'table'",
		})
	}

	if c.Output.MaxCellWidth < 0 {
		errors = append(errors, ValidationError{
			Field:   "output.max_cell_width",
			Message: "max_cell_width cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
