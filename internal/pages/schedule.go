package pages

import (
	"strconv"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
	"github.com/preston-bernstein/league-pages/internal/timeutil"
)

// scorePlaceholder stands in for a side that has not played yet.
const scorePlaceholder = "-"

// BlockKind identifies what a schedule block renders as.
type BlockKind int

const (
	BlockDateHeading BlockKind = iota
	BlockBreak
	BlockMatch
)

// Block is one element of the schedule container, in output order.
type Block struct {
	Kind    BlockKind
	Heading string
	Break   *BreakNotice
	Match   *MatchCard
}

func (b Block) IsHeading() bool { return b.Kind == BlockDateHeading }
func (b Block) IsBreak() bool   { return b.Kind == BlockBreak }
func (b Block) IsMatch() bool   { return b.Kind == BlockMatch }

// BreakNotice announces a recess period.
type BreakNotice struct {
	Desc  string
	Start string
	End   string
}

// Side is one team as shown on a match card.
type Side struct {
	Name string
	Logo string
}

// MatchCard is the rendered form of one match.
type MatchCard struct {
	League    string
	Featured  bool
	Round     int
	Time      string
	Home      Side
	Away      Side
	ScoreHome string
	ScoreAway string
	Venue     string
}

// ScoreLine renders the score pair as "home : away".
func (c MatchCard) ScoreLine() string {
	return c.ScoreHome + " : " + c.ScoreAway
}

// ScheduleView is the schedule container content for one filter value.
type ScheduleView struct {
	Filter Filter
	Blocks []Block
}

// Matches counts the match cards in the view.
func (v ScheduleView) Matches() int {
	n := 0
	for _, b := range v.Blocks {
		if b.IsMatch() {
			n++
		}
	}
	return n
}

// scheduleFold accumulates blocks while walking the schedule. group holds
// the label of the most recent date heading.
type scheduleFold struct {
	blocks []Block
	group  string
}

// BuildSchedule lays out the schedule in stored order. Breaks are never
// filtered and leave the date group alone; consecutive matches on the same
// calendar day share one heading. Entries are not sorted.
func BuildSchedule(ds league.Dataset, f Filter) ScheduleView {
	acc := scheduleFold{blocks: make([]Block, 0, len(ds.Schedule))}
	for _, e := range ds.Schedule {
		acc = acc.step(e, ds, f)
	}
	return ScheduleView{Filter: f, Blocks: acc.blocks}
}

func (acc scheduleFold) step(e league.Entry, ds league.Dataset, f Filter) scheduleFold {
	if e.Break != nil {
		acc.blocks = append(acc.blocks, Block{
			Kind:  BlockBreak,
			Break: &BreakNotice{Desc: e.Break.Desc, Start: e.Break.Start, End: e.Break.End},
		})
		return acc
	}
	m := e.Match
	if m == nil || !f.Includes(m.League) {
		return acc
	}

	label := groupLabel(*m)
	if label != acc.group {
		acc.group = label
		acc.blocks = append(acc.blocks, Block{Kind: BlockDateHeading, Heading: label})
	}

	card := buildMatchCard(*m, ds)
	acc.blocks = append(acc.blocks, Block{Kind: BlockMatch, Match: &card})
	return acc
}

func groupLabel(m league.Match) string {
	day, err := m.Day()
	if err != nil {
		return m.Date
	}
	return timeutil.FormatGroupDate(day)
}

func buildMatchCard(m league.Match, ds league.Dataset) MatchCard {
	return MatchCard{
		League:    string(m.League),
		Featured:  m.League == league.LeagueL1,
		Round:     m.Round,
		Time:      m.Time,
		Home:      Side{Name: m.Home, Logo: TeamLogo(m.Home, ds.Teams)},
		Away:      Side{Name: m.Away, Logo: TeamLogo(m.Away, ds.Teams)},
		ScoreHome: formatScore(m.ScoreHome),
		ScoreAway: formatScore(m.ScoreAway),
		Venue:     ds.Info.Venue,
	}
}

func formatScore(score *int) string {
	if score == nil {
		return scorePlaceholder
	}
	return strconv.Itoa(*score)
}
