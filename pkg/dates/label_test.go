package dates

import (
	"testing"
	"time"
)

func TestLabel(t *testing.T) {
	cases := map[string]string{
		"":           LabelNoDate,
		NoDateKey:    LabelNoDate,
		"2024-05-01": LabelToday,
		"2024-05-02": LabelTomorrow,
		"2024-05-03": "Friday, May 3",
		"2024-12-25": "Wednesday, Dec 25",
		"oops":       "oops",
	}
	for key, want := range cases {
		if got := Label(key, wednesday); got != want {
			t.Fatalf("Label(%q): expected %q, got %q", key, want, got)
		}
	}
}

func TestParseLabelRoundTrip(t *testing.T) {
	for offset := -200; offset <= 200; offset += 7 {
		key := Key(Day(wednesday).AddDate(0, 0, offset))
		got, err := ParseLabel(Label(key, wednesday), wednesday)
		if err != nil {
			t.Fatalf("ParseLabel(Label(%s)): %v", key, err)
		}
		if got != key {
			t.Fatalf("round trip of %s gave %s", key, got)
		}
	}
}

func TestParseLabelForms(t *testing.T) {
	cases := map[string]string{
		"Today":               "2024-05-01",
		"tomorrow":            "2024-05-02",
		"No Due Date":         "",
		"2024-07-04":          "2024-07-04",
		"Fri May 3":           "2024-05-03",
		"May 3":               "2024-05-03",
		"Friday, May 3, 2024": "2024-05-03",
		// Jan 3 with a Friday only exists in 2025 among 2023..2025.
		"Friday, Jan 3": "2025-01-03",
	}
	for in, want := range cases {
		got, err := ParseLabel(in, wednesday)
		if err != nil {
			t.Fatalf("ParseLabel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLabel(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestParseLabelRejectsNonsense(t *testing.T) {
	for _, in := range []string{"", "someday", "Monday, May 3, 2024"} {
		if _, err := ParseLabel(in, wednesday); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestParseLabelStaysNearNow(t *testing.T) {
	// Jan 3 2023 was a Tuesday, more than a year before now.
	// May 3 2020 was a Sunday, four years back.
	for _, in := range []string{"Tuesday, Jan 3", "Sunday, May 3"} {
		if got, err := ParseLabel(in, wednesday); err == nil {
			t.Fatalf("ParseLabel(%q): expected error, got %q", in, got)
		}
	}

	// Without a weekday the nearest date wins.
	got, err := ParseLabel("Jan 3", wednesday)
	if err != nil {
		t.Fatalf("ParseLabel: %v", err)
	}
	if got != "2024-01-03" {
		t.Fatalf("expected 2024-01-03, got %s", got)
	}
}

func TestParseLabelLeapDay(t *testing.T) {
	now := time.Date(2023, time.June, 1, 12, 0, 0, 0, time.Local)
	got, err := ParseLabel("Feb 29", now)
	if err != nil {
		t.Fatalf("ParseLabel: %v", err)
	}
	if got != "2024-02-29" {
		t.Fatalf("expected 2024-02-29, got %s", got)
	}
}

func TestParseDue(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"none":       "",
		"today":      "2024-05-01",
		"tomorrow":   "2024-05-02",
		"2024-5-9":   "2024-05-09",
		"2024-05-09": "2024-05-09",
		"3d":         "2024-05-04",
		"1w2d":       "2024-05-10",
		"6/1":        "2024-06-01",
		"1/3":        "2025-01-03",
	}
	for in, want := range cases {
		got, err := ParseDue(in, wednesday)
		if err != nil {
			t.Fatalf("ParseDue(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDue(%q): expected %q, got %q", in, want, got)
		}
	}
	if _, err := ParseDue("whenever", wednesday); err == nil {
		t.Fatal("expected error for whenever")
	}
}
