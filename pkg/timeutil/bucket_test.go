package timeutil

import (
	"testing"
	"time"
)

func TestStandardizeDayAbbreviations(t *testing.T) {
	now := time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC) // a Wednesday
	cases := map[string]string{
		"Mon":     "Monday",
		"tue":     "Tuesday",
		"WED":     "Wednesday",
		"Sunday":  "Sunday",
		"today":   "Wednesday",
		"Today":   "Wednesday",
		"friday":  "Friday",
		"Sat":     "Saturday",
		" Thu ":   "Thursday",
		"Tuesday": "Tuesday",
	}
	for in, want := range cases {
		got, err := StandardizeDay(in, now)
		if err != nil {
			t.Fatalf("StandardizeDay(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("StandardizeDay(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStandardizeDayRejectsUnknown(t *testing.T) {
	if _, err := StandardizeDay("Blursday", time.Now()); err == nil {
		t.Fatalf("expected error for unknown day")
	}
}

func TestWeekStartAlwaysMonday(t *testing.T) {
	// 2026-03-02 is a Monday.
	for i := 0; i < 7; i++ {
		now := time.Date(2026, time.March, 2+i, 12, 0, 0, 0, time.UTC)
		got := WeekStart(now)
		if got != "2026-03-02" {
			t.Fatalf("WeekStart(%s %s) = %s, want 2026-03-02", now.Weekday(), now.Format(LayoutISO), got)
		}
	}
}

func TestWeekStartSundayMapsSixDaysBack(t *testing.T) {
	sunday := time.Date(2026, time.March, 8, 8, 0, 0, 0, time.UTC)
	if sunday.Weekday() != time.Sunday {
		t.Fatalf("fixture is not a Sunday")
	}
	if got := WeekStart(sunday); got != "2026-03-02" {
		t.Fatalf("WeekStart(Sunday) = %s, want 2026-03-02", got)
	}
}

func TestCurrentQuarterBoundaries(t *testing.T) {
	cases := []struct {
		month time.Month
		want  int
	}{
		{time.January, 1},
		{time.March, 1},
		{time.April, 2},
		{time.June, 2},
		{time.July, 3},
		{time.September, 3},
		{time.October, 4},
		{time.December, 4},
	}
	for _, c := range cases {
		now := time.Date(2026, c.month, 15, 0, 0, 0, 0, time.UTC)
		if got := CurrentQuarter(now); got != c.want {
			t.Fatalf("CurrentQuarter(%s) = %d, want %d", c.month, got, c.want)
		}
	}
}

func TestIsDayBucket(t *testing.T) {
	if !IsDayBucket("Monday") {
		t.Fatalf("Monday should be a day bucket")
	}
	if IsDayBucket("Mon") {
		t.Fatalf("abbreviations are not bucket keys")
	}
}
