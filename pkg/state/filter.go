package state

import (
	"strings"
	"time"

	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/task"
)

// Filters narrow the active tasks. Each empty dimension places no
// constraint; non-empty dimensions AND together, and the values within the
// date and list dimensions OR together.
type Filters struct {
	Keyword string
	Dates   []dates.Bucket
	Lists   []string
}

// Empty reports whether no dimension is active.
func (f Filters) Empty() bool {
	return f.Keyword == "" && len(f.Dates) == 0 && len(f.Lists) == 0
}

// Match reports whether t passes every active dimension. The keyword is a
// case-insensitive substring of the name, used as given.
func (f Filters) Match(t *task.Task, now time.Time) bool {
	if f.Keyword != "" {
		if !strings.Contains(strings.ToLower(t.Name), strings.ToLower(f.Keyword)) {
			return false
		}
	}

	if len(f.Dates) > 0 {
		key := t.DateKey()
		ok := false
		for _, b := range f.Dates {
			if dates.Matches(b, key, now) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if len(f.Lists) > 0 && !containsString(f.Lists, t.ListID) {
		return false
	}
	return true
}

// HasDate reports whether bucket b is selected.
func (f Filters) HasDate(b dates.Bucket) bool {
	for _, d := range f.Dates {
		if d == b {
			return true
		}
	}
	return false
}

// HasList reports whether list id is selected.
func (f Filters) HasList(id string) bool {
	return containsString(f.Lists, id)
}

// SetKeyword replaces the keyword filter.
func (s *State) SetKeyword(kw string) {
	s.Filters.Keyword = kw
}

// ToggleDateFilter adds bucket b to the date filters, or removes it when it
// is already selected. It reports whether b is selected afterwards.
func (s *State) ToggleDateFilter(b dates.Bucket) bool {
	for i, d := range s.Filters.Dates {
		if d == b {
			s.Filters.Dates = append(s.Filters.Dates[:i], s.Filters.Dates[i+1:]...)
			return false
		}
	}
	s.Filters.Dates = append(s.Filters.Dates, b)
	return true
}

// ToggleListFilter adds or removes a list id from the list filters.
func (s *State) ToggleListFilter(id string) bool {
	for i, l := range s.Filters.Lists {
		if l == id {
			s.Filters.Lists = append(s.Filters.Lists[:i], s.Filters.Lists[i+1:]...)
			return false
		}
	}
	s.Filters.Lists = append(s.Filters.Lists, id)
	return true
}

// ClearFilters drops every filter dimension.
func (s *State) ClearFilters() {
	s.Filters = Filters{}
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
