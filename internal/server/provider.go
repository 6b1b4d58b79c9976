package server

import (
	"strings"

	"github.com/preston-bernstein/league-pages/internal/config"
	"github.com/preston-bernstein/league-pages/internal/providers"
	"github.com/preston-bernstein/league-pages/internal/providers/file"
	"github.com/preston-bernstein/league-pages/internal/providers/fixture"
	"github.com/preston-bernstein/league-pages/internal/providers/remote"
)

func selectProvider(cfg config.DataConfig) providers.DatasetProvider {
	source := strings.TrimSpace(cfg.Source)
	switch sourceKind(source) {
	case sourceFixture:
		return fixture.New()
	case sourceRemote:
		return remote.NewClient(remote.Config{
			URL:     source,
			Timeout: cfg.Timeout,
		})
	default:
		return file.New(source)
	}
}
