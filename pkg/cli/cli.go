package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/isoshelf/pkg/cli/config"
	"github.com/m-mizutani/isoshelf/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type runConfig struct {
	writer io.Writer
}

// RunOption is a functional option for Run
type RunOption func(*runConfig)

// WithWriter sets where command output (not logs) is written. Stdout by default.
func WithWriter(w io.Writer) RunOption {
	return func(c *runConfig) {
		c.writer = w
	}
}

// Run runs the isoshelf command line with args
func Run(ctx context.Context, args []string, opts ...RunOption) error {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var loggerCfg config.Logger
	logger := slog.Default()

	app := &cli.Command{
		Name:    "isoshelf",
		Usage:   "Catalog of disk images stored in a GitHub repository folder",
		Version: types.Version,
		Writer:  cfg.writer,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			configured, err := setupLogger(&loggerCfg)
			if err != nil {
				return nil, err
			}
			logger = configured
			return ctxlog.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdList(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logger.Error("isoshelf failed", slog.Any("error", err))
		return err
	}
	return nil
}

// setupLogger builds the logger from flags and installs it as the slog default
func setupLogger(cfg *config.Logger) (*slog.Logger, error) {
	logger, err := cfg.Configure()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}
