package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/xmlscan/internal/config"
	"github.com/dbsmedya/xmlscan/internal/logger"
	"github.com/dbsmedya/xmlscan/internal/shutdown"
)

// errFilesSkipped is returned with --fail-on-skip when any file was skipped.
var errFilesSkipped = errors.New("one or more files were skipped")

// loadConfig resolves configuration from the config file, environment,
// flags and the optional positional directory, in increasing precedence.
func loadConfig(args []string) (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	if len(args) > 0 {
		overrides.Directory = args[0]
	}
	cfg.ApplyOverrides(config.Overrides{
		Directory: overrides.Directory,
		Extension: overrides.Extension,
		Format:    overrides.Format,
		NoColor:   overrides.NoColor,
		LogLevel:  overrides.LogLevel,
		LogFormat: overrides.LogFormat,
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// prepare loads configuration, builds the logger and a signal-aware context.
// The returned cleanup stops signal handling and flushes the logger.
func prepare(cmd *cobra.Command, args []string) (*config.Config, *logger.Logger, context.Context, func(), error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := shutdown.SetupSignalHandlerWithCallback(parent, func(sig os.Signal) {
		log.Warnw("Received signal, stopping after current file", "signal", sig.String())
	})

	cleanup := func() {
		stop()
		_ = log.Sync()
	}
	return cfg, log, ctx, cleanup, nil
}

// checkSkipped applies --fail-on-skip.
func checkSkipped(skipped int) error {
	if skipped > 0 && GetCLIOverrides().FailOnSkip {
		return fmt.Errorf("%w: %d file(s)", errFilesSkipped, skipped)
	}
	return nil
}
