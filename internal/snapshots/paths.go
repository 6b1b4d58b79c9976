package snapshots

import (
	"path"

	"github.com/preston-bernstein/league-pages/internal/pages"
)

// Files written at the root of the output directory.
const (
	IndexFile    = "index.html"
	ScheduleFile = "schedule.html"
	TeamsFile    = "teams.html"
	ManifestFile = "manifest.json"

	fragmentDir    = "fragments"
	fragmentPrefix = "schedule-"
	fragmentSuffix = ".html"
)

// StaticLinks point pages at their siblings in the output directory.
var StaticLinks = pages.Links{
	Schedule:       ScheduleFile,
	Teams:          TeamsFile,
	FragmentPrefix: fragmentDir + "/" + fragmentPrefix,
	FragmentSuffix: fragmentSuffix,
}

// FragmentPath is the slash-separated output path of the schedule fragment for f.
func FragmentPath(f pages.Filter) string {
	return path.Join(fragmentDir, fragmentPrefix+f.String()+fragmentSuffix)
}
