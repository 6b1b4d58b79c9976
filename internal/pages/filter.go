package pages

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
)

// FilterAll is the select value meaning "no filtering".
const FilterAll = "all"

// Filter selects which matches the schedule shows. The zero value shows all.
type Filter struct {
	league league.League
}

// LeagueFilter returns a filter showing only matches of l.
func LeagueFilter(l league.League) Filter {
	return Filter{league: l}
}

// ParseFilter reads a select value: "" or "all", or a known league code.
func ParseFilter(raw string) (Filter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == FilterAll {
		return Filter{}, nil
	}
	l := league.League(raw)
	if !l.Valid() {
		return Filter{}, fmt.Errorf("unknown league filter %q", raw)
	}
	return Filter{league: l}, nil
}

// FilterOptions lists every selectable filter in display order.
func FilterOptions() []Filter {
	opts := []Filter{{}}
	for _, l := range league.Leagues {
		opts = append(opts, Filter{league: l})
	}
	return opts
}

// All reports whether the filter lets every match through.
func (f Filter) All() bool {
	return f.league == ""
}

// Includes reports whether a match of league l passes the filter.
func (f Filter) Includes(l league.League) bool {
	return f.All() || f.league == l
}

// String returns the select value for the filter.
func (f Filter) String() string {
	if f.All() {
		return FilterAll
	}
	return string(f.league)
}

// Label is the text shown in the select control.
func (f Filter) Label() string {
	if f.All() {
		return "All leagues"
	}
	return string(f.league)
}
