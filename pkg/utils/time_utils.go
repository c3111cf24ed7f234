package utils

import "time"

// Activity times are bare HH:MM strings with no timezone meaning. Ordering
// anchors them to a fixed arbitrary date so comparison is purely
// time-of-day.
const timeOfDayAnchor = "2000-01-01 "

const timeOfDayLayout = "2006-01-02 15:04"

// ParseTimeOfDay parses an HH:MM activity time for ordering purposes.
// Returns ok=false for anything that is not a valid HH:MM.
func ParseTimeOfDay(hhmm string) (time.Time, bool) {
	t, err := time.Parse(timeOfDayLayout, timeOfDayAnchor+hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"01/02/2006",
}

// ParseFlexibleDate parses display-oriented trip dates. A failed parse is
// reported as ok=false so callers can treat the signal as absent; the
// undecided-dates sentinel falls out naturally since it matches no layout.
func ParseFlexibleDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func FormatDate(t time.Time) string { return t.Format("2006-01-02") }
