package state

import (
	"fmt"
	"strings"

	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/task"
)

// View selects how tasks are grouped for display.
type View int

const (
	ViewList View = iota
	ViewDate
)

func (v View) String() string {
	switch v {
	case ViewDate:
		return "date"
	default:
		return "list"
	}
}

// ParseView parses "list" or "date". An empty string is ViewList.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "list", "lists":
		return ViewList, nil
	case "date", "dates":
		return ViewDate, nil
	}
	return ViewList, fmt.Errorf("state: unknown view %q (expected list or date)", s)
}

// Toggle returns the other view.
func (v View) Toggle() View {
	if v == ViewDate {
		return ViewList
	}
	return ViewDate
}

// SectionKind tells a list section from a date section.
type SectionKind int

const (
	SectionList SectionKind = iota
	SectionDate
)

// Section is one heading of the current view with the filtered tasks under
// it.
type Section struct {
	Kind SectionKind
	// ListID is set for list sections.
	ListID string
	// DateKey is an ISO date or dates.NoDateKey for date sections.
	DateKey string
	Title   string
	Icon    string
	Tasks   []*task.Task
}

// Sections lays out the filtered tasks for the current view. The list view
// has one section per list in list order, skipping lists excluded by the
// list filter. The date view has one section per date group.
func (s *State) Sections() []Section {
	filtered := s.FilteredTasks()
	if s.View == ViewDate {
		now := s.now()
		groups := dates.GroupByDate(filtered)
		out := make([]Section, 0, len(groups))
		for _, g := range groups {
			out = append(out, Section{
				Kind:    SectionDate,
				DateKey: g.Key,
				Title:   g.Label(now),
				Icon:    "fa-calendar",
				Tasks:   g.Tasks,
			})
		}
		return out
	}

	byList := make(map[string][]*task.Task, len(s.Lists))
	for _, t := range filtered {
		byList[t.ListID] = append(byList[t.ListID], t)
	}
	out := make([]Section, 0, len(s.Lists))
	for _, l := range s.Lists {
		if len(s.Filters.Lists) > 0 && !s.Filters.HasList(l.ID) {
			continue
		}
		out = append(out, Section{
			Kind:   SectionList,
			ListID: l.ID,
			Title:  l.Name,
			Icon:   l.Icon,
			Tasks:  byList[l.ID],
		})
	}
	return out
}
