package pages

import (
	"testing"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
)

func TestParseFilter(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		all  bool
	}{
		{"", "all", true},
		{"all", "all", true},
		{" L1 ", "L1", false},
		{"L2", "L2", false},
	}
	for _, tc := range cases {
		f, err := ParseFilter(tc.raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.raw, err)
		}
		if f.String() != tc.want || f.All() != tc.all {
			t.Fatalf("raw %q: expected %s (all=%v), got %s (all=%v)", tc.raw, tc.want, tc.all, f.String(), f.All())
		}
	}
}

func TestParseFilterRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"L3", "ALL", "l1"} {
		if _, err := ParseFilter(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestFilterIncludes(t *testing.T) {
	all := Filter{}
	if !all.Includes(league.LeagueL1) || !all.Includes(league.LeagueL2) {
		t.Fatalf("expected all filter to include every league")
	}
	l1 := LeagueFilter(league.LeagueL1)
	if !l1.Includes(league.LeagueL1) || l1.Includes(league.LeagueL2) {
		t.Fatalf("expected L1 filter to include only L1")
	}
}

func TestFilterOptionsOrder(t *testing.T) {
	opts := FilterOptions()
	if len(opts) != 3 || opts[0].String() != "all" || opts[1].String() != "L1" || opts[2].String() != "L2" {
		t.Fatalf("unexpected options %v", opts)
	}
	if opts[0].Label() != "All leagues" || opts[1].Label() != "L1" {
		t.Fatalf("unexpected labels %q %q", opts[0].Label(), opts[1].Label())
	}
}
