package server

import (
	"log/slog"
	"time"

	"github.com/preston-bernstein/league-pages/internal/config"
	"github.com/preston-bernstein/league-pages/internal/metrics"
	"github.com/preston-bernstein/league-pages/internal/providers"
)

// providerFactory assembles the loader with its shared wrappers.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.DataConfig) *providers.Loader {
	return f.wrap(selectProvider(cfg), sourceKind(cfg.Source), cfg.Timeout)
}

// wrap collapses concurrent page loads into one in-flight read and puts the
// loader boundary in front of it.
func (f providerFactory) wrap(provider providers.DatasetProvider, source string, timeout time.Duration) *providers.Loader {
	return providers.NewLoader(providers.NewSharedProvider(provider, timeout), source, f.logger, f.metrics)
}

// NewLoader builds the dataset loader for cfg. The render command uses it
// outside of a running server.
func NewLoader(cfg config.DataConfig, logger *slog.Logger, recorder *metrics.Recorder) *providers.Loader {
	return newProviderFactory(logger, recorder).build(cfg)
}
