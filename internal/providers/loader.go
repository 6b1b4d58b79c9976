package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
	"github.com/preston-bernstein/league-pages/internal/logging"
	"github.com/preston-bernstein/league-pages/internal/metrics"
)

// Status describes the outcome of recent dataset fetches.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether a fetch has succeeded and the source is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// Loader is the boundary page controllers fetch through. Failures are
// logged and collapsed into a nil dataset.
type Loader struct {
	provider DatasetProvider
	source   string
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	statusMu sync.RWMutex
	status   Status
}

// NewLoader wraps provider; source names it in logs and metrics.
func NewLoader(provider DatasetProvider, source string, logger *slog.Logger, recorder *metrics.Recorder) *Loader {
	return &Loader{
		provider: provider,
		source:   source,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// FetchData performs one read of the league document. It returns nil when
// the read fails for any reason.
func (l *Loader) FetchData(ctx context.Context) *league.Dataset {
	start := l.now()
	l.recordAttempt(start)

	ds, err := l.provider.FetchDataset(ctx)
	elapsed := l.now().Sub(start)
	l.metrics.RecordFetch(l.source, elapsed, err)

	if err != nil {
		args := []any{"error", err, logging.FieldDurationMS, elapsed.Milliseconds()}
		if statusErr, ok := AsStatusError(err); ok {
			args = append(args, logging.FieldStatusCode, statusErr.StatusCode)
		}
		logWithSource(ctx, l.logger, slog.LevelError, l.source, "error fetching data", args...)
		l.recordFailure(err)
		return nil
	}

	l.recordSuccess(start)
	logWithSource(ctx, l.logger, slog.LevelDebug, l.source, "fetched league dataset",
		logging.FieldCount, len(ds.Schedule),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return &ds
}

// Source returns the configured source name.
func (l *Loader) Source() string {
	return l.source
}

// Status returns a snapshot of recent fetch health.
func (l *Loader) Status() Status {
	l.statusMu.RLock()
	defer l.statusMu.RUnlock()
	return l.status
}

func (l *Loader) recordAttempt(at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.LastAttempt = at
}

func (l *Loader) recordSuccess(at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.ConsecutiveFailures = 0
	l.status.LastError = ""
	l.status.LastSuccess = at
}

func (l *Loader) recordFailure(err error) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.ConsecutiveFailures++
	l.status.LastError = err.Error()
}
