package testutil

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
)

// GoodProvider returns the provided dataset with no error.
type GoodProvider struct {
	Dataset league.Dataset
}

func (p GoodProvider) FetchDataset(ctx context.Context) (league.Dataset, error) {
	_ = ctx
	return p.Dataset, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchDataset(ctx context.Context) (league.Dataset, error) {
	_ = ctx
	return league.Dataset{}, p.Err
}

// CountingProvider returns Dataset and counts calls.
type CountingProvider struct {
	Dataset league.Dataset
	calls   atomic.Int32
}

func (p *CountingProvider) FetchDataset(ctx context.Context) (league.Dataset, error) {
	_ = ctx
	p.calls.Add(1)
	return p.Dataset, nil
}

// Calls reports how many fetches reached the provider.
func (p *CountingProvider) Calls() int {
	return int(p.calls.Load())
}

// StubLoader hands controllers a fixed dataset; nil simulates a failed fetch.
type StubLoader struct {
	Dataset *league.Dataset
	calls   atomic.Int32
}

func (l *StubLoader) FetchData(ctx context.Context) *league.Dataset {
	_ = ctx
	l.calls.Add(1)
	return l.Dataset
}

// Calls reports how many times FetchData ran.
func (l *StubLoader) Calls() int {
	return int(l.calls.Load())
}
