package teams

import (
	"context"
	"io"
	"time"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
	"github.com/preston-bernstein/league-pages/internal/metrics"
	"github.com/preston-bernstein/league-pages/internal/pages"
)

// PageTeams is the page name used for render metrics.
const PageTeams = "teams"

// Loader fetches the league dataset. A nil result means it is unavailable.
type Loader interface {
	FetchData(ctx context.Context) *league.Dataset
}

// Controller builds and renders the teams page.
type Controller struct {
	loader   Loader
	renderer *pages.Renderer
	metrics  *metrics.Recorder
	links    pages.Links
}

// NewController wires a Controller. A nil renderer uses the embedded templates.
func NewController(loader Loader, renderer *pages.Renderer, recorder *metrics.Recorder, links pages.Links) *Controller {
	if renderer == nil {
		renderer = pages.MustRenderer()
	}
	return &Controller{
		loader:   loader,
		renderer: renderer,
		metrics:  recorder,
		links:    links,
	}
}

// LoadTeamsPage fetches the dataset and writes the teams page. Without a
// dataset both containers stay empty.
func (c *Controller) LoadTeamsPage(ctx context.Context, w io.Writer) error {
	return c.WriteTeamsPage(w, c.loader.FetchData(ctx))
}

// WriteTeamsPage renders an already fetched dataset.
func (c *Controller) WriteTeamsPage(w io.Writer, ds *league.Dataset) error {
	start := time.Now()
	page := pages.TeamsPage{Links: c.links}
	if ds != nil {
		view, err := pages.BuildTeams(*ds)
		if err != nil {
			return err
		}
		page.View = &view
	}
	if err := c.renderer.TeamsPage(w, page); err != nil {
		return err
	}
	cards := 0
	if page.View != nil {
		cards = page.View.Len()
	}
	c.metrics.RecordRender(PageTeams, time.Since(start), cards)
	return nil
}
