package snapshots

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/preston-bernstein/league-pages/internal/app/schedule"
	"github.com/preston-bernstein/league-pages/internal/app/teams"
	"github.com/preston-bernstein/league-pages/internal/domain/league"
	"github.com/preston-bernstein/league-pages/internal/logging"
	"github.com/preston-bernstein/league-pages/internal/metrics"
	"github.com/preston-bernstein/league-pages/internal/pages"
)

// ErrNoDataset is returned when the loader could not produce a dataset.
// Nothing is written in that case so a previous publish stays intact.
var ErrNoDataset = errors.New("league dataset unavailable")

// Loader fetches the league dataset. A nil result means it is unavailable.
type Loader interface {
	FetchData(ctx context.Context) *league.Dataset
}

// Syncer renders every page from one dataset read and writes the static site.
type Syncer struct {
	loader    Loader
	writer    *Writer
	schedule  *schedule.Controller
	teams     *teams.Controller
	source    string
	logger    *slog.Logger
	now       func() time.Time
	newTicker func(time.Duration) *time.Ticker
}

// NewSyncer wires a Syncer; source is recorded in the manifest.
func NewSyncer(loader Loader, writer *Writer, source string, logger *slog.Logger, recorder *metrics.Recorder) *Syncer {
	renderer := pages.MustRenderer()
	return &Syncer{
		loader:    loader,
		writer:    writer,
		schedule:  schedule.NewController(loader, renderer, recorder, StaticLinks),
		teams:     teams.NewController(loader, renderer, recorder, StaticLinks),
		source:    source,
		logger:    logger,
		now:       time.Now,
		newTicker: time.NewTicker,
	}
}

// SyncOnce fetches the dataset once and writes index, schedule, teams, one
// fragment per filter value and the manifest.
func (s *Syncer) SyncOnce(ctx context.Context) (Manifest, error) {
	start := s.now()
	ds := s.loader.FetchData(ctx)
	if ds == nil {
		return Manifest{}, ErrNoDataset
	}

	type output struct {
		path   string
		render func(io.Writer) error
	}
	outputs := []output{
		{IndexFile, func(w io.Writer) error { return s.schedule.WriteSchedulePage(w, ds, pages.Filter{}) }},
		{ScheduleFile, func(w io.Writer) error { return s.schedule.WriteSchedulePage(w, ds, pages.Filter{}) }},
		{TeamsFile, func(w io.Writer) error { return s.teams.WriteTeamsPage(w, ds) }},
	}
	for _, f := range pages.FilterOptions() {
		f := f
		outputs = append(outputs, output{FragmentPath(f), func(w io.Writer) error { return s.schedule.WriteFragment(w, ds, f) }})
	}

	m := Manifest{
		Version:     manifestVersion,
		GeneratedAt: start.UTC(),
		Source:      s.source,
		Dataset:     summarize(*ds),
		Pages:       make([]PageMeta, 0, len(outputs)),
	}
	var buf bytes.Buffer
	for _, out := range outputs {
		buf.Reset()
		if err := out.render(&buf); err != nil {
			return Manifest{}, err
		}
		changed, err := s.writer.WriteFile(out.path, buf.Bytes())
		if err != nil {
			return Manifest{}, err
		}
		m.Pages = append(m.Pages, PageMeta{Path: out.path, Bytes: buf.Len(), Changed: changed})
	}
	if err := s.writer.WriteManifest(m); err != nil {
		return Manifest{}, err
	}

	logging.Info(ctx, s.logger, "static site written",
		logging.FieldSource, s.source,
		logging.FieldCount, len(m.Pages),
		"changed", m.Changed(),
		"dir", s.writer.BasePath(),
		logging.FieldDurationMS, s.now().Sub(start).Milliseconds(),
	)
	return m, nil
}

// Run publishes immediately, then again every interval until ctx is done.
// Failed rounds are logged and retried on the next tick.
func (s *Syncer) Run(ctx context.Context, interval time.Duration) {
	s.syncLogged(ctx)
	if interval <= 0 {
		return
	}
	ticker := s.newTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.syncLogged(ctx)
		}
	}
}

func (s *Syncer) syncLogged(ctx context.Context) {
	if _, err := s.SyncOnce(ctx); err != nil {
		logging.Warn(ctx, s.logger, "static site sync failed",
			logging.FieldSource, s.source,
			"error", err,
		)
	}
}

func summarize(ds league.Dataset) DatasetMeta {
	meta := DatasetMeta{
		Teams:   len(ds.Teams),
		Entries: len(ds.Schedule),
		Venue:   ds.Info.Venue,
	}
	for _, e := range ds.Schedule {
		switch e.Kind() {
		case league.KindBreak:
			meta.Breaks++
		case league.KindMatch:
			meta.Matches++
			if e.Match.Played() {
				meta.Played++
			}
		}
	}
	return meta
}
