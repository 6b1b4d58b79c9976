package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/league-pages/internal/config"
	"github.com/preston-bernstein/league-pages/internal/logging"
)

const (
	appName    = "league-pages"
	appVersion = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// overrides holds flag values that take precedence over the environment.
type overrides struct {
	source string
	port   string
	out    string
}

func newRootCmd() *cobra.Command {
	var o overrides
	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "League schedule and teams pages",
		Version: appVersion,
	}
	rootCmd.PersistentFlags().StringVar(&o.source, "source", "", "Dataset URL, file path or \"fixture\" (overrides DATA_SOURCE)")

	rootCmd.AddCommand(newServeCmd(&o), newRenderCmd(&o))
	return rootCmd
}

// loadConfig reads the environment and applies any flags that were set.
func loadConfig(cmd *cobra.Command, o *overrides) config.Config {
	cfg := config.Load()
	if flagChanged(cmd, "source") {
		cfg.Data.Source = o.source
	}
	if flagChanged(cmd, "port") {
		cfg.Port = o.port
	}
	if flagChanged(cmd, "out") {
		cfg.OutputDir = o.out
	}
	return cfg
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// newLogger returns the command logger and the closer for its log file.
func newLogger(cfg config.Config) (*slog.Logger, io.Closer) {
	return logging.Open(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
		File:    cfg.Log.File,
	})
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
