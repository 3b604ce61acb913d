package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scan.Extension != ".xml" {
		t.Errorf("expected default extension .xml, got %q", cfg.Scan.Extension)
	}
	if cfg.Scan.Directory != "" {
		t.Errorf("expected empty default directory, got %q", cfg.Scan.Directory)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("expected default output format text, got %q", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Error("expected color enabled by default")
	}
	if cfg.Output.MaxCellWidth != 60 {
		t.Errorf("expected default max_cell_width 60, got %d", cfg.Output.MaxCellWidth)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected default log format text, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected default log output stderr, got %q", cfg.Logging.Output)
	}
}
