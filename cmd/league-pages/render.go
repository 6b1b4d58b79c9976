package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/league-pages/internal/config"
	"github.com/preston-bernstein/league-pages/internal/logging"
	"github.com/preston-bernstein/league-pages/internal/metrics"
	"github.com/preston-bernstein/league-pages/internal/server"
	"github.com/preston-bernstein/league-pages/internal/snapshots"
)

func newRenderCmd(o *overrides) *cobra.Command {
	var watch time.Duration
	cmd := &cobra.Command{
		Use:          "render",
		Short:        "Write the pages to a directory as static HTML",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd, o)
			logger, logFile := newLogger(cfg)
			defer logFile.Close()

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			return runRender(ctx, cfg, logger, watch)
		},
	}
	cmd.Flags().StringVar(&o.out, "out", "", "Output directory (overrides OUTPUT_DIR)")
	cmd.Flags().DurationVar(&watch, "watch", 0, "Re-render on this interval until interrupted")
	return cmd
}

// runRender publishes once, or keeps republishing every watch interval.
// A one-shot render fails when the dataset is unavailable.
func runRender(ctx context.Context, cfg config.Config, logger *slog.Logger, watch time.Duration) error {
	recorder := metrics.NewRecorder()
	loader := server.NewLoader(cfg.Data, logger, recorder)
	syncer := snapshots.NewSyncer(loader, snapshots.NewWriter(cfg.OutputDir), loader.Source(), logger, recorder)

	if watch > 0 {
		logging.Info(ctx, logger, "watching source",
			logging.FieldSource, loader.Source(),
			"interval", watch.String(),
		)
		syncer.Run(ctx, watch)
		return nil
	}

	_, err := syncer.SyncOnce(ctx)
	return err
}
