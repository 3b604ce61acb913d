package cmd

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "xmlscan "+Version)
	assert.Contains(t, out, "commit "+Commit)
	assert.Contains(t, out, runtime.Version())
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
	assert.Contains(t, out, "Config file:    none (defaults and XMLSCAN_* environment)")
	assert.Contains(t, out, "File suffix:    .xml")
	assert.Contains(t, out, "Output format:  text")
}

func TestVersionCommandReportsOverrides(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"xmlscan.yaml": "scan:\n  extension: .rdl\noutput:\n  format: yaml\n",
	})
	cfg := filepath.Join(dir, "xmlscan.yaml")

	out, err := executeCommand(t, "version", "--config", cfg, "-o", "json")
	require.NoError(t, err)

	assert.Contains(t, out, "Config file:    "+cfg)
	assert.Contains(t, out, "File suffix:    .rdl")
	assert.Contains(t, out, "Output format:  json")
}

func TestVersionCommandBadConfig(t *testing.T) {
	_, err := executeCommand(t, "version", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
