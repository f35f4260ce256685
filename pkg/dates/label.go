package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	LabelToday    = "Today"
	LabelTomorrow = "Tomorrow"
	LabelNoDate   = "No Due Date"

	// layoutLabel renders as "Monday, May 3".
	layoutLabel = "Monday, Jan 2"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitDays      = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
	monthDayLayouts = []string{"Jan 2", "January 2", "Jan 2, 2006", "January 2, 2006"}
)

// Label renders the heading for a date key: Today, Tomorrow, No Due Date, or
// a long date like "Monday, May 3". Keys that do not parse are returned as-is.
func Label(key string, now time.Time) string {
	if key == "" || key == NoDateKey {
		return LabelNoDate
	}
	d, ok := ParseKey(key)
	if !ok {
		return key
	}
	switch {
	case IsToday(d, now):
		return LabelToday
	case IsTomorrow(d, now):
		return LabelTomorrow
	}
	return d.Format(layoutLabel)
}

// labelWindowDays bounds how far from now a heading without a year may land.
const labelWindowDays = 366

// ParseLabel is the inverse of Label. It returns the ISO date for a heading,
// or "" for the no-date heading. ISO dates are accepted unchanged. A long
// date without a year only resolves within a year of now: the weekday (when
// given) must pick exactly one such date, otherwise the nearest one wins.
// Headings for dates further away cannot be told apart and are rejected.
func ParseLabel(label string, now time.Time) (string, error) {
	trimmed := strings.TrimSpace(label)
	switch strings.ToLower(trimmed) {
	case "":
		return "", fmt.Errorf("dates: empty label")
	case strings.ToLower(LabelNoDate), NoDateKey:
		return "", nil
	case strings.ToLower(LabelToday):
		return Key(now), nil
	case strings.ToLower(LabelTomorrow):
		return Key(Day(now).AddDate(0, 0, 1)), nil
	}
	if d, ok := ParseKey(trimmed); ok {
		return Key(d), nil
	}

	rest := trimmed
	weekday, hasWeekday := time.Weekday(0), false
	if i := strings.IndexAny(rest, ", "); i > 0 {
		if wd, ok := parseWeekday(rest[:i]); ok {
			weekday, hasWeekday = wd, true
			rest = strings.TrimLeft(rest[i:], ", ")
		}
	}

	var parsed time.Time
	var err error
	for _, layout := range monthDayLayouts {
		if parsed, err = time.Parse(layout, rest); err == nil {
			break
		}
	}
	if err != nil {
		return "", fmt.Errorf("dates: unrecognized label %q", label)
	}

	if parsed.Year() != 0 {
		d := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local)
		if hasWeekday && d.Weekday() != weekday {
			return "", fmt.Errorf("dates: %q is not a %s", label, weekday)
		}
		return Key(d), nil
	}

	today := Day(now)
	var matches []time.Time
	for year := today.Year() - 1; year <= today.Year()+1; year++ {
		d := time.Date(year, parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local)
		if d.Month() != parsed.Month() {
			// Feb 29 outside a leap year.
			continue
		}
		if hasWeekday && d.Weekday() != weekday {
			continue
		}
		if absDays(d, today) > labelWindowDays {
			continue
		}
		matches = append(matches, d)
	}
	switch {
	case len(matches) == 0:
		return "", fmt.Errorf("dates: no date within a year of %s matches %q", Key(today), label)
	case len(matches) > 1 && hasWeekday:
		return "", fmt.Errorf("dates: %q matches more than one date near %s", label, Key(today))
	}
	best := matches[0]
	for _, d := range matches[1:] {
		if absDays(d, today) < absDays(best, today) {
			best = d
		}
	}
	return Key(best), nil
}

// ParseDue parses user input for a due date: today, tomorrow, none, an ISO
// date, 2006-1-2, 1/2 (this year, or next year when already past), a label
// produced by Label, or a relative window such as "3d" or "1w2d". It returns
// "" when the input clears the date.
func ParseDue(input string, now time.Time) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	switch trimmed {
	case "", "none", "no-date", "nodate":
		return "", nil
	}
	if d, err := time.ParseInLocation("2006-1-2", trimmed, time.Local); err == nil {
		return Key(d), nil
	}
	if d, err := time.ParseInLocation("1/2", trimmed, time.Local); err == nil {
		today := Day(now)
		d = time.Date(today.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
		// 1/3 typed on 12/5 means next January, not eleven months ago.
		if d.Before(today) {
			d = d.AddDate(1, 0, 0)
		}
		return Key(d), nil
	}
	if days, err := parseWindow(trimmed); err == nil {
		return Key(Day(now).AddDate(0, 0, days)), nil
	}
	if key, err := ParseLabel(input, now); err == nil {
		return key, nil
	}
	return "", fmt.Errorf("dates: cannot parse due date %q", input)
}

func parseWindow(input string) (int, error) {
	remaining := input
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		unit, ok := unitDays[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += value * unit
		remaining = remaining[len(matches[0]):]
	}
	return total, nil
}

func parseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, false
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.HasPrefix(strings.ToLower(wd.String()), s) {
			return wd, true
		}
	}
	return 0, false
}

func absDays(a, b time.Time) int {
	d := int(a.Sub(b).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}
