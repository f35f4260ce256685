// Package dates classifies due dates into buckets relative to now and groups
// tasks by calendar day. All comparisons are on local calendar dates; the
// time of day is ignored.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Bucket classifies a due date relative to the current moment.
type Bucket string

const (
	Today    Bucket = "today"
	Tomorrow Bucket = "tomorrow"
	Week     Bucket = "week"
	NoDate   Bucket = "no-date"
	Later    Bucket = "later"
)

const layoutISO = "2006-01-02"

// FilterBuckets are the buckets a filter may select.
func FilterBuckets() []Bucket {
	return []Bucket{Today, Tomorrow, Week, NoDate}
}

// ParseBucket parses a filter bucket tag. Later is a display class only and
// is rejected.
func ParseBucket(s string) (Bucket, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return Today, nil
	case "tomorrow":
		return Tomorrow, nil
	case "week", "this-week", "thisweek":
		return Week, nil
	case "no-date", "nodate", "none":
		return NoDate, nil
	}
	return "", fmt.Errorf("dates: unknown date filter %q (expected today, tomorrow, week or no-date)", s)
}

func (b Bucket) String() string {
	return string(b)
}

// Day truncates t to local midnight.
func Day(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// SameDay reports whether a and b fall on the same local calendar date.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// IsToday reports whether d is the current local date.
func IsToday(d, now time.Time) bool {
	return SameDay(d, now)
}

// IsTomorrow reports whether d is the day after the current local date.
func IsTomorrow(d, now time.Time) bool {
	return SameDay(d, Day(now).AddDate(0, 0, 1))
}

// WeekBounds returns the Sunday and Saturday of the week containing now.
// Both are local midnights; callers compare calendar dates inclusively.
func WeekBounds(now time.Time) (time.Time, time.Time) {
	today := Day(now)
	start := today.AddDate(0, 0, -int(today.Weekday()))
	return start, start.AddDate(0, 0, 6)
}

// IsThisWeek reports whether d falls within Sunday..Saturday of the week
// containing now. The bounds are recomputed on every call.
func IsThisWeek(d, now time.Time) bool {
	start, end := WeekBounds(now)
	day := Day(d)
	return !day.Before(start) && !day.After(end)
}

// ParseKey parses an ISO date (or the date portion of an ISO datetime) as a
// local calendar date.
func ParseKey(key string) (time.Time, bool) {
	key = strings.TrimSpace(key)
	if i := strings.IndexByte(key, 'T'); i >= 0 {
		key = key[:i]
	}
	if key == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(layoutISO, key, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Key formats t as an ISO date in local time.
func Key(t time.Time) string {
	return t.In(time.Local).Format(layoutISO)
}

// Classify returns the bucket for an ISO date key. The first matching of
// today, tomorrow, week wins; an empty or unparsable key is NoDate.
func Classify(key string, now time.Time) Bucket {
	d, ok := ParseKey(key)
	if !ok {
		return NoDate
	}
	switch {
	case IsToday(d, now):
		return Today
	case IsTomorrow(d, now):
		return Tomorrow
	case IsThisWeek(d, now):
		return Week
	}
	return Later
}

// Matches reports whether a due date key satisfies bucket b. A missing date
// only matches NoDate; a present date only matches Today, Tomorrow or Week
// by its own predicate, so a date due today also matches Week.
func Matches(b Bucket, key string, now time.Time) bool {
	d, ok := ParseKey(key)
	if !ok {
		return b == NoDate
	}
	switch b {
	case Today:
		return IsToday(d, now)
	case Tomorrow:
		return IsTomorrow(d, now)
	case Week:
		return IsThisWeek(d, now)
	}
	return false
}

// FormatTime renders an HH:MM due time as "3:04 PM". Anything else is
// returned unchanged.
func FormatTime(v string) string {
	v = strings.TrimSpace(v)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("3:04 PM")
		}
	}
	return v
}
