package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekLabel renders the canonical label for a season week, 1-based.
func WeekLabel(week int) string {
	return fmt.Sprintf("week-%02d", week+1)
}

// SeasonYear returns the calendar year a season starting at kickoff is
// labeled with.
func SeasonYear(kickoff time.Time) int {
	return kickoff.UTC().Year()
}
