package providers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
	"github.com/preston-bernstein/league-pages/internal/metrics"
)

type stubProvider struct {
	ds  league.Dataset
	err error
}

func (s stubProvider) FetchDataset(ctx context.Context) (league.Dataset, error) {
	_ = ctx
	return s.ds, s.err
}

type blockingProvider struct {
	calls   atomic.Int32
	release chan struct{}
	ds      league.Dataset
}

func (b *blockingProvider) FetchDataset(ctx context.Context) (league.Dataset, error) {
	b.calls.Add(1)
	select {
	case <-b.release:
		return b.ds, nil
	case <-ctx.Done():
		return league.Dataset{}, ctx.Err()
	}
}

func sampleDataset() league.Dataset {
	return league.Dataset{
		Teams:    []league.Team{{Name: "Tigers", Logo: "t.png", League: league.LeagueL1}},
		Schedule: []league.Entry{league.BreakEntry(league.Break{Desc: "Recess"})},
		Info:     league.Info{Venue: "Arena"},
	}
}

func TestDatasetProviderInterfaceImplemented(t *testing.T) {
	var _ DatasetProvider = stubProvider{}
	var _ DatasetProvider = NewSharedProvider(stubProvider{}, 0)
}

func TestLoaderReturnsDatasetAndRecordsSuccess(t *testing.T) {
	rec := metrics.NewRecorder()
	loader := NewLoader(stubProvider{ds: sampleDataset()}, "stub", nil, rec)

	ds := loader.FetchData(context.Background())
	if ds == nil || ds.Info.Venue != "Arena" {
		t.Fatalf("expected dataset, got %+v", ds)
	}
	status := loader.Status()
	if !status.IsReady() || status.LastError != "" {
		t.Fatalf("expected ready status, got %+v", status)
	}
	if snap := rec.Snapshot("stub"); snap.Fetches != 1 || snap.Errors != 0 {
		t.Fatalf("unexpected fetch metrics %+v", snap)
	}
}

func TestLoaderCollapsesFailuresToNil(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	rec := metrics.NewRecorder()
	loader := NewLoader(stubProvider{err: &StatusError{Source: "remote", StatusCode: 404}}, "remote", logger, rec)

	if ds := loader.FetchData(context.Background()); ds != nil {
		t.Fatalf("expected nil dataset on failure, got %+v", ds)
	}
	out := buf.String()
	if !strings.Contains(out, "error fetching data") || !strings.Contains(out, "source=remote") || !strings.Contains(out, "status_code=404") {
		t.Fatalf("expected diagnostic log, got %q", out)
	}
	status := loader.Status()
	if status.IsReady() || status.ConsecutiveFailures != 1 || !strings.Contains(status.LastError, "404") {
		t.Fatalf("unexpected status %+v", status)
	}
	if snap := rec.Snapshot("remote"); snap.Errors != 1 {
		t.Fatalf("expected fetch error recorded, got %+v", snap)
	}
}

func TestLoaderRecoversAfterFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("down")}
	loader := NewLoader(provider, "stub", nil, nil)
	loader.FetchData(context.Background())

	provider.err = nil
	provider.ds = sampleDataset()
	if ds := loader.FetchData(context.Background()); ds == nil {
		t.Fatalf("expected dataset after recovery")
	}
	if status := loader.Status(); status.ConsecutiveFailures != 0 || status.LastError != "" {
		t.Fatalf("expected failures reset, got %+v", status)
	}
}

func TestStatusIsReadyThreshold(t *testing.T) {
	now := time.Now()
	if (Status{}).IsReady() {
		t.Fatalf("expected not ready before any success")
	}
	if !(Status{LastSuccess: now, ConsecutiveFailures: 2}).IsReady() {
		t.Fatalf("expected ready under failure threshold")
	}
	if (Status{LastSuccess: now, ConsecutiveFailures: 3}).IsReady() {
		t.Fatalf("expected not ready at failure threshold")
	}
}

func TestSharedProviderCollapsesConcurrentFetches(t *testing.T) {
	inner := &blockingProvider{release: make(chan struct{}), ds: sampleDataset()}
	shared := NewSharedProvider(inner, 0)

	const callers = 5
	var wg sync.WaitGroup
	started := make(chan struct{}, callers)
	results := make(chan league.Dataset, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started <- struct{}{}
			ds, err := shared.FetchDataset(context.Background())
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results <- ds
		}()
	}
	for i := 0; i < callers; i++ {
		<-started
	}
	// Give the goroutines a moment to join the in-flight call.
	time.Sleep(20 * time.Millisecond)
	close(inner.release)
	wg.Wait()
	close(results)

	if got := inner.calls.Load(); got < 1 || got > callers {
		t.Fatalf("unexpected upstream call count %d", got)
	}
	for ds := range results {
		if ds.Info.Venue != "Arena" {
			t.Fatalf("expected shared dataset, got %+v", ds)
		}
	}

	// Nothing is retained once the call completes.
	inner.release = make(chan struct{})
	close(inner.release)
	before := inner.calls.Load()
	if _, err := shared.FetchDataset(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls.Load() != before+1 {
		t.Fatalf("expected a fresh upstream read after completion")
	}
}

func TestSharedProviderHonorsCallerCancellation(t *testing.T) {
	inner := &blockingProvider{release: make(chan struct{})}
	shared := NewSharedProvider(inner, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := shared.FetchDataset(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	close(inner.release)
}

func TestSharedProviderSurvivesOtherCallerCancellation(t *testing.T) {
	inner := &blockingProvider{release: make(chan struct{}), ds: sampleDataset()}
	shared := NewSharedProvider(inner, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := shared.FetchDataset(ctx)
		firstDone <- err
	}()
	waitForCalls(t, inner, 1)

	secondDone := make(chan error, 1)
	var got league.Dataset
	go func() {
		ds, err := shared.FetchDataset(context.Background())
		got = ds
		secondDone <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	if err := <-firstDone; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected first caller to see its own cancellation, got %v", err)
	}

	close(inner.release)
	if err := <-secondDone; err != nil {
		t.Fatalf("expected second caller to get the dataset, got %v", err)
	}
	if got.Info.Venue != "Arena" {
		t.Fatalf("unexpected dataset %+v", got)
	}
	if inner.calls.Load() != 1 {
		t.Fatalf("expected one shared upstream read, got %d", inner.calls.Load())
	}
}

func TestSharedProviderBoundsReadByTimeout(t *testing.T) {
	inner := &blockingProvider{release: make(chan struct{})}
	defer close(inner.release)
	shared := NewSharedProvider(inner, 10*time.Millisecond)

	if _, err := shared.FetchDataset(context.Background()); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected fetch timeout, got %v", err)
	}
}

func TestLoaderReadinessUnaffectedByAbandonedRequest(t *testing.T) {
	inner := &blockingProvider{release: make(chan struct{}), ds: sampleDataset()}
	loader := NewLoader(NewSharedProvider(inner, time.Second), "stub", nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	abandoned := make(chan *league.Dataset, 1)
	go func() { abandoned <- loader.FetchData(ctx) }()
	waitForCalls(t, inner, 1)

	live := make(chan *league.Dataset, 1)
	go func() { live <- loader.FetchData(context.Background()) }()
	time.Sleep(20 * time.Millisecond)

	cancel()
	<-abandoned
	close(inner.release)
	if ds := <-live; ds == nil {
		t.Fatalf("expected live caller to receive the dataset")
	}
	if status := loader.Status(); !status.IsReady() {
		t.Fatalf("expected loader to stay ready, got %+v", status)
	}
}

func waitForCalls(t *testing.T, p *blockingProvider, n int32) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for p.calls.Load() < n {
		if time.Now().After(deadline) {
			t.Fatalf("upstream read never started")
		}
		time.Sleep(time.Millisecond)
	}
}
