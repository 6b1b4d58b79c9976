package pages

import (
	"fmt"
	"html/template"
	"regexp"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
)

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|(rgb|rgba|hsl|hsla)\([0-9.,%\s]+\)|[a-zA-Z]{3,20})$`)

const fallbackColor = "#000"

// TeamCard is the rendered form of one roster entry.
type TeamCard struct {
	Name      string
	Logo      string
	League    string
	FromColor string
	ToColor   string
}

// Gradient is the accent bar background. Colors are sanitized before they
// reach the style attribute.
func (c TeamCard) Gradient() template.CSS {
	return template.CSS(fmt.Sprintf("linear-gradient(to right, %s, %s)", c.FromColor, c.ToColor))
}

// Tag is the league label shown under the team name.
func (c TeamCard) Tag() string {
	return c.League + " LEAGUE"
}

// TeamsView holds the two league containers in roster order.
type TeamsView struct {
	L1 []TeamCard
	L2 []TeamCard
}

// Len counts every card across both containers.
func (v TeamsView) Len() int {
	return len(v.L1) + len(v.L2)
}

// BuildTeams partitions the roster by league. A team outside the known
// leagues is an error rather than a silent second-bucket entry.
func BuildTeams(ds league.Dataset) (TeamsView, error) {
	var view TeamsView
	for _, t := range ds.Teams {
		card := buildTeamCard(t)
		switch t.League {
		case league.LeagueL1:
			view.L1 = append(view.L1, card)
		case league.LeagueL2:
			view.L2 = append(view.L2, card)
		default:
			return TeamsView{}, fmt.Errorf("team %q has unknown league %q", t.Name, t.League)
		}
	}
	return view, nil
}

func buildTeamCard(t league.Team) TeamCard {
	from := sanitizeColor(t.PrimaryColor(), fallbackColor)
	return TeamCard{
		Name:      t.Name,
		Logo:      t.Logo,
		League:    string(t.League),
		FromColor: from,
		ToColor:   sanitizeColor(t.SecondaryColor(), from),
	}
}

func sanitizeColor(c, fallback string) string {
	if colorPattern.MatchString(c) {
		return c
	}
	return fallback
}
