package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	fetches          int
	errors           int
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset fetches
// and forwards everything to OpenTelemetry instruments when configured.
type Recorder struct {
	mu      sync.Mutex
	sources map[string]*sourceStats
	renders map[string]int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources: make(map[string]*sourceStats),
		renders: make(map[string]int),
		otel:    otel,
	}
}

// RecordFetch counts one dataset fetch against source and stores its latency.
func (r *Recorder) RecordFetch(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats, ok := r.sources[source]
	if !ok {
		stats = &sourceStats{}
		r.sources[source] = stats
	}
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(source, duration, err)
	}
}

// RecordRender counts one page render and the number of blocks it produced.
func (r *Recorder) RecordRender(page string, duration time.Duration, blocks int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.renders[page]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRender(page, duration, blocks)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the stats recorded for one source.
type Snapshot struct {
	Fetches          int
	Errors           int
	LastFetchLatency time.Duration
}

// Snapshot returns a copy of the current stats for the source.
func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.sources[source]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// Renders returns how many times page has been rendered.
func (r *Recorder) Renders(page string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders[page]
}
