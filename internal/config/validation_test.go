package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Scan.Directory = "/data/xml"
	return cfg
}

func TestValidConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestMissingDirectory(t *testing.T) {
	cfg := validConfig()
	cfg.Scan.Directory = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for missing directory")
	}
	if !strings.Contains(err.Error(), "scan.directory") {
		t.Errorf("expected error to mention scan.directory, got: %v", err)
	}
}

func TestInvalidExtension(t *testing.T) {
	tests := []struct {
		name      string
		extension string
		wantMsg   string
	}{
		{"empty", "", "extension is required"},
		{"missing dot", "xml", "must start with '.'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Scan.Extension = tt.extension

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected %q in error, got: %v", tt.wantMsg, err)
			}
		})
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Output.Format = "csv"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for invalid format")
	}
	if !strings.Contains(err.Error(), "output.format") {
		t.Errorf("expected error to mention output.format, got: %v", err)
	}
}

func TestNegativeCellWidth(t *testing.T) {
	cfg := validConfig()
	cfg.Output.MaxCellWidth = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for negative max_cell_width")
	}
}

func TestInvalidLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for logging")
	}

	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestMultipleErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scan.Extension = ""
	cfg.Output.Format = "csv"

	err := cfg.Validate()
	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(errs), errs)
	}
	if !strings.HasPrefix(errs.Error(), "validation failed:") {
		t.Errorf("unexpected error format: %s", errs.Error())
	}
}
