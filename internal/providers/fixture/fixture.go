package fixture

import (
	"context"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
)

// Provider returns a static league useful for local runs and tests.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchDataset returns a fresh copy of the sample league.
func (p *Provider) FetchDataset(ctx context.Context) (league.Dataset, error) {
	_ = ctx
	return Dataset(), nil
}

func score(v int) *int { return &v }

// Dataset builds the sample league: four teams over two leagues, two match
// days around a break, and a mix of played and unplayed matches.
func Dataset() league.Dataset {
	return league.Dataset{
		Teams: []league.Team{
			{Name: "Harbor Tigers", Logo: "img/tigers.png", League: league.LeagueL1, Colors: []string{"#f97316", "#111827"}},
			{Name: "North Owls", Logo: "img/owls.png", League: league.LeagueL1, Colors: []string{"#6366f1"}},
			{Name: "River Foxes", Logo: "img/foxes.png", League: league.LeagueL2, Colors: []string{"#dc2626", "#fbbf24"}},
			{Name: "Valley Bears", Logo: "img/bears.png", League: league.LeagueL2, Colors: []string{"#065f46", "#a7f3d0"}},
		},
		Schedule: []league.Entry{
			league.MatchEntry(league.Match{League: league.LeagueL1, Round: 1, Date: "2024-03-09", Time: "14:00", Home: "Harbor Tigers", Away: "North Owls", ScoreHome: score(3), ScoreAway: score(1)}),
			league.MatchEntry(league.Match{League: league.LeagueL2, Round: 1, Date: "2024-03-09", Time: "16:30", Home: "River Foxes", Away: "Valley Bears", ScoreHome: score(0), ScoreAway: score(0)}),
			league.BreakEntry(league.Break{Desc: "Transfer window", Start: "2024-03-10", End: "2024-03-20"}),
			league.MatchEntry(league.Match{League: league.LeagueL1, Round: 2, Date: "2024-03-23", Time: "14:00", Home: "North Owls", Away: "Harbor Tigers"}),
			league.MatchEntry(league.Match{League: league.LeagueL2, Round: 2, Date: "2024-03-24", Time: "15:00", Home: "Valley Bears", Away: "River Foxes"}),
		},
		Info: league.Info{Venue: "Central Arena"},
	}
}
