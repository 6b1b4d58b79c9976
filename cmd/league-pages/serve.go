package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/league-pages/internal/config"
	"github.com/preston-bernstein/league-pages/internal/server"
)

func newServeCmd(o *overrides) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Serve the schedule and teams pages over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd, o)
			logger, logFile := newLogger(cfg)
			defer logFile.Close()

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			runServe(ctx, stop, cfg, logger)
			return nil
		},
	}
	cmd.Flags().StringVar(&o.port, "port", "", "HTTP port (overrides PORT)")
	return cmd
}

// runServe blocks until ctx is cancelled and the server has shut down.
func runServe(ctx context.Context, stop context.CancelFunc, cfg config.Config, logger *slog.Logger) {
	server.New(cfg, logger).Run(ctx, stop)
}
