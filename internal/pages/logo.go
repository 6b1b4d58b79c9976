package pages

import "github.com/preston-bernstein/league-pages/internal/domain/league"

// TeamLogo returns the logo of the first team named name, or "" when the
// roster has no such team.
func TeamLogo(name string, teams []league.Team) string {
	for _, t := range teams {
		if t.Name == name {
			return t.Logo
		}
	}
	return ""
}
