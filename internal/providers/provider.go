package providers

import (
	"context"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
)

// DatasetProvider fetches and validates the league document.
// Implementations perform exactly one read per call and never retry.
type DatasetProvider interface {
	FetchDataset(ctx context.Context) (league.Dataset, error)
}
