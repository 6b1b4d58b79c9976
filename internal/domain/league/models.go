package league

import (
	"time"

	"github.com/preston-bernstein/league-pages/internal/timeutil"
)

// League identifies which division a team or match belongs to.
type League string

const (
	LeagueL1 League = "L1"
	LeagueL2 League = "L2"
)

// Leagues lists every known league in display order.
var Leagues = []League{LeagueL1, LeagueL2}

// Valid reports whether l is one of the known leagues.
func (l League) Valid() bool {
	switch l {
	case LeagueL1, LeagueL2:
		return true
	default:
		return false
	}
}

// Dataset is the whole league document: roster, schedule and metadata.
type Dataset struct {
	Teams    []Team  `json:"teams" validate:"unique=Name,dive"`
	Schedule []Entry `json:"schedule" validate:"dive"`
	Info     Info    `json:"league_info"`
}

// Info carries league-wide metadata shown on every match card.
type Info struct {
	Venue string `json:"venue" validate:"required"`
}

const defaultColor = "#000"

// Team is a roster entry. Name is the join key used by schedule entries.
type Team struct {
	Name   string   `json:"name" validate:"required"`
	Logo   string   `json:"logo"`
	League League   `json:"league" validate:"league"`
	Colors []string `json:"colors" validate:"max=2"`
}

// PrimaryColor returns the first team color, or black when none is set.
func (t Team) PrimaryColor() string {
	if len(t.Colors) > 0 && t.Colors[0] != "" {
		return t.Colors[0]
	}
	return defaultColor
}

// SecondaryColor returns the second team color, falling back to the primary.
func (t Team) SecondaryColor() string {
	if len(t.Colors) > 1 && t.Colors[1] != "" {
		return t.Colors[1]
	}
	return t.PrimaryColor()
}

// Break announces a recess period in the schedule.
type Break struct {
	Desc  string `json:"desc" validate:"required"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Match is a scheduled fixture between two teams. A nil score means the
// side has not played yet.
type Match struct {
	League    League `json:"league" validate:"league"`
	Round     int    `json:"round" validate:"gte=0"`
	Date      string `json:"date" validate:"required,matchdate"`
	Time      string `json:"time"`
	Home      string `json:"home" validate:"required"`
	Away      string `json:"away" validate:"required"`
	ScoreHome *int   `json:"score_home"`
	ScoreAway *int   `json:"score_away"`
}

// Day parses the match date into a calendar day.
func (m Match) Day() (time.Time, error) {
	return timeutil.ParseMatchDate(m.Date)
}

// Played reports whether both sides have a recorded score.
func (m Match) Played() bool {
	return m.ScoreHome != nil && m.ScoreAway != nil
}
