package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
	"github.com/preston-bernstein/league-pages/internal/logging"
)

const defaultInterval = time.Minute

// Loader reads the league dataset, tracking source health as a side effect.
type Loader interface {
	FetchData(ctx context.Context) *league.Dataset
}

// Poller re-reads the data source on an interval so readiness reflects the
// source even when no pages are being requested. The dataset it reads is
// dropped; pages always fetch their own.
type Poller struct {
	loader   Loader
	logger   *slog.Logger
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
}

// New constructs a Poller with sane defaults.
func New(loader Loader, logger *slog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		loader:   loader,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	p.startMu.Unlock()

	go func() {
		logging.Info(ctx, p.logger, "source probe started", logging.FieldDurationMS, p.interval.Milliseconds())
		// Initial read so /ready settles right after boot.
		p.probe(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(ctx, p.logger, "source probe stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(ctx, p.logger, "source probe stopped")
				return
			case <-p.ticker.C:
				p.probe(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// probe performs one read. Failures are logged by the loader.
func (p *Poller) probe(ctx context.Context) {
	ds := p.loader.FetchData(ctx)
	if ds != nil && p.logger != nil {
		p.logger.DebugContext(ctx, "source probe succeeded", logging.FieldCount, len(ds.Schedule))
	}
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}
