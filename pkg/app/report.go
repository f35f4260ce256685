package app

import (
	"time"

	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/state"
)

// Summary counts tasks for status lines. Filters are ignored.
type Summary struct {
	Total      int            `json:"total"`
	Incomplete int            `json:"incomplete"`
	Completed  int            `json:"completed"`
	Deleted    int            `json:"deleted"`
	DueToday   int            `json:"dueToday"`
	Overdue    int            `json:"overdue"`
	PerList    map[string]int `json:"perList"`
}

// Summarize counts the active and deleted tasks of st. Due and overdue
// counts only include incomplete tasks.
func Summarize(st *state.State, now time.Time) Summary {
	incomplete := st.IncompleteTasks()
	sum := Summary{
		Total:      len(st.Tasks),
		Incomplete: len(incomplete),
		Completed:  len(st.Tasks) - len(incomplete),
		Deleted:    len(st.Deleted),
		PerList:    make(map[string]int, len(st.Lists)),
	}
	today := dates.Day(now)
	for _, t := range incomplete {
		sum.PerList[t.ListID]++
		d, ok := t.Due()
		if !ok {
			continue
		}
		switch {
		case dates.IsToday(d, now):
			sum.DueToday++
		case d.Before(today):
			sum.Overdue++
		}
	}
	return sum
}

// Summary counts the current state.
func (s *Service) Summary() (Summary, error) {
	var sum Summary
	err := s.Do(func(st *state.State) error {
		sum = Summarize(st, st.Now())
		return nil
	})
	return sum, err
}
