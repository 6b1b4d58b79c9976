package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the preferred schedule date format.
const DateLayout = "2006-01-02"

// matchDateLayouts are tried in order when reading a schedule date.
var matchDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-1-2",
	"2006-1-2T15:04",
	"2006-1-2 15:04",
	"2006/1/2",
	"2006/01/02",
}

// ParseMatchDate reads a schedule date. The calendar day is taken as
// written; offsets in timestamps are kept, never converted.
func ParseMatchDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range matchDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// FormatGroupDate renders the date-group heading label, e.g. "2024 / 3 / 9".
func FormatGroupDate(t time.Time) string {
	return fmt.Sprintf("%d / %d / %d", t.Year(), int(t.Month()), t.Day())
}
