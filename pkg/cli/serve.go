package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/isoshelf/pkg/cli/config"
	controller "github.com/m-mizutani/isoshelf/pkg/controller/http"
	"github.com/m-mizutani/isoshelf/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		sentryCfg  config.Sentry
		catalogCfg catalogConfig
	)

	flags := append(serverCfg.Flags(), catalogCfg.flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			catalogUC, src, formatter, err := catalogCfg.build()
			if err != nil {
				return err
			}

			logger.Info("Starting isoshelf server",
				slog.String("addr", serverCfg.Addr),
				slog.String("repository", src.RepositoryURL()),
				slog.String("folder", src.Folder),
				slog.String("branch", src.Branch),
				slog.Any("sentry", sentryCfg),
			)

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				catalogUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithFormatter(formatter),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Initial load; the page shows the loading state until it finishes
			async.Dispatch(ctx, "catalog-load", catalogUC.Load)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
