package schedule

import (
	"context"
	"io"
	"time"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
	"github.com/preston-bernstein/league-pages/internal/metrics"
	"github.com/preston-bernstein/league-pages/internal/pages"
)

// Page names used for render metrics.
const (
	PageSchedule = "schedule"
	PageFragment = "schedule_fragment"
)

// Loader fetches the league dataset. A nil result means it is unavailable.
type Loader interface {
	FetchData(ctx context.Context) *league.Dataset
}

// Controller builds and renders the schedule page and its fragment.
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

// LoadSchedulePage fetches the dataset and writes the full schedule page.
// Without a dataset the page shows the loading placeholder.
func (c *Controller) LoadSchedulePage(ctx context.Context, w io.Writer, f pages.Filter) error {
	return c.WriteSchedulePage(w, c.loader.FetchData(ctx), f)
}

// WriteSchedulePage renders an already fetched dataset.
func (c *Controller) WriteSchedulePage(w io.Writer, ds *league.Dataset, f pages.Filter) error {
	start := time.Now()
	page := pages.SchedulePage{
		View:   build(ds, f),
		Filter: f,
		Links:  c.links,
	}
	if err := c.renderer.SchedulePage(w, page); err != nil {
		return err
	}
	c.metrics.RecordRender(PageSchedule, time.Since(start), blockCount(page.View))
	return nil
}

// RenderFragment fetches the dataset and writes only the container content
// for f. The select control swaps this in on change.
func (c *Controller) RenderFragment(ctx context.Context, w io.Writer, f pages.Filter) error {
	return c.WriteFragment(w, c.loader.FetchData(ctx), f)
}

// WriteFragment renders the container content from an already fetched dataset.
func (c *Controller) WriteFragment(w io.Writer, ds *league.Dataset, f pages.Filter) error {
	start := time.Now()
	view := build(ds, f)
	if err := c.renderer.ScheduleFragment(w, view); err != nil {
		return err
	}
	c.metrics.RecordRender(PageFragment, time.Since(start), blockCount(view))
	return nil
}

func build(ds *league.Dataset, f pages.Filter) *pages.ScheduleView {
	if ds == nil {
		return nil
	}
	view := pages.BuildSchedule(*ds, f)
	return &view
}

func blockCount(view *pages.ScheduleView) int {
	if view == nil {
		return 0
	}
	return len(view.Blocks)
}
