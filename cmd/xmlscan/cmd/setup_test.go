package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/xmlscan/internal/config"
)

func TestLoadConfigPrecedence(t *testing.T) {
	t.Cleanup(resetFlags)

	cfgPath := filepath.Join(t.TempDir(), "xmlscan.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scan:\n  directory: /from/file\noutput:\n  format: yaml\n"), 0644))
	cfgFile = cfgPath

	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.Scan.Directory)
	assert.Equal(t, "yaml", cfg.Output.Format)

	scanDir = "/from/flag"
	cfg, err = loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Scan.Directory)

	cfg, err = loadConfig([]string{"/from/arg"})
	require.NoError(t, err)
	assert.Equal(t, "/from/arg", cfg.Scan.Directory)
}

func TestLoadConfigRequiresDirectory(t *testing.T) {
	t.Cleanup(resetFlags)

	_, err := loadConfig(nil)
	require.Error(t, err)

	var verrs config.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "scan.directory", verrs[0].Field)
}

func TestCheckSkipped(t *testing.T) {
	t.Cleanup(resetFlags)

	assert.NoError(t, checkSkipped(2))

	failOnSkip = true
	assert.NoError(t, checkSkipped(0))
	err := checkSkipped(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFilesSkipped))
}
