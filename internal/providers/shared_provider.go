package providers

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
)

const sharedKey = "dataset"

// sharedProvider collapses concurrent fetches into one upstream read.
// Results are handed to every waiter and then dropped.
type sharedProvider struct {
	inner   DatasetProvider
	timeout time.Duration
	group   singleflight.Group
}

// NewSharedProvider wraps inner so overlapping page loads share one request.
// The shared read ignores any single caller's cancellation and is bounded by
// timeout instead; timeout <= 0 leaves it unbounded.
func NewSharedProvider(inner DatasetProvider, timeout time.Duration) DatasetProvider {
	return &sharedProvider{inner: inner, timeout: timeout}
}

func (s *sharedProvider) FetchDataset(ctx context.Context) (league.Dataset, error) {
	ch := s.group.DoChan(sharedKey, func() (any, error) {
		fetchCtx := context.WithoutCancel(ctx)
		if s.timeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(fetchCtx, s.timeout)
			defer cancel()
		}
		return s.inner.FetchDataset(fetchCtx)
	})
	select {
	case <-ctx.Done():
		return league.Dataset{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return league.Dataset{}, res.Err
		}
		return res.Val.(league.Dataset), nil
	}
}
