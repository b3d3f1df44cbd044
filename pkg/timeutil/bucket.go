// Package timeutil computes the calendar buckets the planner files todos and
// goals into: weekday names, Monday week-start dates, and quarters.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// LayoutISO is the date-only layout used for week-start keys.
const LayoutISO = "2006-01-02"

var dayBuckets = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DayBuckets returns the fixed Monday-first weekday keys.
func DayBuckets() []string {
	out := make([]string, len(dayBuckets))
	copy(out, dayBuckets)
	return out
}

// IsDayBucket reports whether s is one of the fixed weekday keys.
func IsDayBucket(s string) bool {
	for _, d := range dayBuckets {
		if d == s {
			return true
		}
	}
	return false
}

// StandardizeDay maps three-letter day abbreviations, full day names, and the
// literal "today" onto the full weekday bucket key. The now argument anchors
// "today".
func StandardizeDay(s string, now time.Time) (string, error) {
	in := strings.TrimSpace(s)
	if strings.EqualFold(in, "today") {
		return now.Weekday().String(), nil
	}
	for _, d := range dayBuckets {
		if strings.EqualFold(in, d) || strings.EqualFold(in, d[:3]) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown day %q: use Mon..Sun, a full day name, or today", s)
}

// WeekStart returns the ISO date of the Monday beginning the week containing
// now. Sunday counts as day seven of the prior-started week, so it maps six
// days back.
func WeekStart(now time.Time) string {
	offset := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		offset = 6
	}
	monday := now.AddDate(0, 0, -offset)
	return monday.Format(LayoutISO)
}

// CurrentQuarter returns the calendar quarter (1..4) for now.
func CurrentQuarter(now time.Time) int {
	return (int(now.Month())-1)/3 + 1
}
