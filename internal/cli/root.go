// Package cli implements the wordgen command line.
package cli

import (
	"os"

	"wordgen/internal/app"
	"wordgen/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd := newRootCmd(defaultDeps)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// deps builds the services a command needs; tests swap it out
type deps func(debug bool) (*app.Services, *zap.Logger, error)

func defaultDeps(debug bool) (*app.Services, *zap.Logger, error) {
	logger, err := newLogger(debug)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	services, err := app.Build(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return services, logger, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	// Keep stdout clean for command output
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func newRootCmd(build deps) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "wordgen",
		Short:        "Random word lists and the admin dashboard from the terminal",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")

	load := func() (*app.Services, *zap.Logger, error) { return build(debug) }
	cmd.AddCommand(generateCmd(load))
	cmd.AddCommand(dashboardCmd(load))
	return cmd
}
