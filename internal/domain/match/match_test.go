package match

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{raw: "2026-10-16T14:05:00Z", want: "14:05"},
		{raw: "2026-10-16T14:05:00+02:00", want: "12:05"},
		{raw: "2026-10-16T14:05:00.123456", want: "14:05"},
		{raw: "2026-10-16T09:30", want: "09:30"},
		{raw: "not-a-date", want: TimeUnknown},
		{raw: "", want: TimeUnknown},
	}

	for _, tc := range cases {
		if got := FormatTime(tc.raw, time.UTC); got != tc.want {
			t.Fatalf("FormatTime(%q): got=%q want=%q", tc.raw, got, tc.want)
		}
	}
}

func TestFormatTime_ConvertsToLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*60*60)
	if got := FormatTime("2026-10-16T22:30:00Z", loc); got != "00:30" {
		t.Fatalf("unexpected time: %q", got)
	}
	if got := FormatDate("2026-10-16T22:30:00Z", loc); got != "October 17, 2026" {
		t.Fatalf("unexpected date: %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	if got := FormatDate("2026-03-05T14:05:00Z", nil); got != "March 05, 2026" {
		t.Fatalf("unexpected date: %q", got)
	}
	if got := FormatDate("2026-03-05", time.UTC); got != "March 05, 2026" {
		t.Fatalf("unexpected date-only value: %q", got)
	}
	if got := FormatDate("garbage", time.UTC); got != DateUnknown {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		StatusScheduled: "Scheduled",
		StatusInPlay:    "LIVE",
		StatusPaused:    "Half Time",
		StatusFinished:  "Finished",
		StatusPostponed: "Postponed",
		StatusCancelled: "Cancelled",
		"SUSPENDED":     "SUSPENDED",
		"":              "",
		"in_play":       "LIVE",
		" finished ":    "Finished",
		"suspended":     "suspended",
	}
	for status, want := range cases {
		if got := StatusLabel(status); got != want {
			t.Fatalf("StatusLabel(%q): got=%q want=%q", status, got, want)
		}
	}
}

func TestIsLive(t *testing.T) {
	t.Parallel()

	if !IsLive("in_play") {
		t.Fatalf("expected in_play to be live")
	}
	if IsLive(StatusPaused) || IsLive(StatusFinished) {
		t.Fatalf("only IN_PLAY counts as live")
	}
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	got := Match{HomeTeam: "Chelsea"}.WithDefaults()
	if got.HomeTeam != "Chelsea" || got.AwayTeam != UnknownName || got.Competition != UnknownName {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}
