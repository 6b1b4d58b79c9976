package testutil

import "github.com/preston-bernstein/league-pages/internal/domain/league"

// IntPtr returns a pointer to v; handy for match scores.
func IntPtr(v int) *int {
	return &v
}

// SampleTeam returns a team fixture with a derived logo path.
func SampleTeam(name string, l league.League) league.Team {
	return league.Team{
		Name:   name,
		Logo:   "img/" + name + ".png",
		League: l,
		Colors: []string{"#123456", "#abcdef"},
	}
}

// SampleMatch returns an unplayed match fixture.
func SampleMatch(l league.League, date, home, away string) league.Match {
	return league.Match{
		League: l,
		Round:  1,
		Date:   date,
		Time:   "15:00",
		Home:   home,
		Away:   away,
	}
}

// SampleDataset builds a small valid league: one team per league, a played
// match against an unlisted opponent, a break and an unplayed match.
func SampleDataset() league.Dataset {
	played := SampleMatch(league.LeagueL1, "2024-05-04", "Alpha", "Gamma")
	played.ScoreHome = IntPtr(1)
	played.ScoreAway = IntPtr(0)
	return league.Dataset{
		Teams: []league.Team{
			SampleTeam("Alpha", league.LeagueL1),
			SampleTeam("Beta", league.LeagueL2),
		},
		Schedule: []league.Entry{
			league.MatchEntry(played),
			league.BreakEntry(league.Break{Desc: "Mid-season break", Start: "5/5", End: "5/10"}),
			league.MatchEntry(SampleMatch(league.LeagueL2, "2024-05-11", "Beta", "Delta")),
		},
		Info: league.Info{Venue: "Test Ground"},
	}
}
