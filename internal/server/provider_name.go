package server

import "strings"

// Source kinds used as the source label in logs and metrics.
const (
	sourceFixture = "fixture"
	sourceRemote  = "remote"
	sourceFile    = "file"
)

// sourceKind classifies a DATA_SOURCE value: "fixture", an http(s) URL, or
// anything else as a file path.
func sourceKind(raw string) string {
	raw = strings.TrimSpace(raw)
	lower := strings.ToLower(raw)
	switch {
	case lower == sourceFixture:
		return sourceFixture
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return sourceRemote
	default:
		return sourceFile
	}
}
