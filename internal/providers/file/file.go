package file

import (
	"context"
	"fmt"
	"os"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
)

// Provider reads the league document from a local path.
type Provider struct {
	path string
}

// New returns a provider for the document at path.
func New(path string) *Provider {
	return &Provider{path: path}
}

// FetchDataset opens and decodes the document.
func (p *Provider) FetchDataset(ctx context.Context) (league.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return league.Dataset{}, err
	}
	f, err := os.Open(p.path)
	if err != nil {
		return league.Dataset{}, fmt.Errorf("file: %w", err)
	}
	defer f.Close()

	ds, err := league.Decode(f)
	if err != nil {
		return league.Dataset{}, fmt.Errorf("file %s: %w", p.path, err)
	}
	return ds, nil
}
