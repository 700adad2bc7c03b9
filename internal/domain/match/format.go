package match

import (
	"strings"
	"time"
)

const (
	TimeUnknown = "TBD"
	DateUnknown = "Date TBD"

	timeLayout = "15:04"
	dateLayout = "January 02, 2006"
)

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseKickoff parses an ISO-8601 timestamp. Values without an offset are
// read in loc.
func ParseKickoff(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}

	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts, true
	}
	for _, layout := range naiveLayouts {
		if ts, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// FormatTime renders the kickoff clock time in loc, or TimeUnknown.
func FormatTime(raw string, loc *time.Location) string {
	ts, ok := ParseKickoff(raw, loc)
	if !ok {
		return TimeUnknown
	}
	return ts.In(orUTC(loc)).Format(timeLayout)
}

// FormatDate renders the kickoff day in loc, or DateUnknown.
func FormatDate(raw string, loc *time.Location) string {
	ts, ok := ParseKickoff(raw, loc)
	if !ok {
		return DateUnknown
	}
	return ts.In(orUTC(loc)).Format(dateLayout)
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
