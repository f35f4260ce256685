package dates

import (
	"sort"
	"time"

	"tableflip.dev/tasklists/pkg/task"
)

// NoDateKey keys the group of tasks without a due date.
const NoDateKey = "no-date"

// Group is one date bucket of the date view.
type Group struct {
	// Key is an ISO date, or NoDateKey.
	Key   string
	Tasks []*task.Task
}

// NoDate reports whether g holds the tasks without a due date.
func (g Group) NoDate() bool {
	return g.Key == NoDateKey
}

// Label is the heading shown for the group.
func (g Group) Label(now time.Time) string {
	return Label(g.Key, now)
}

// GroupByDate partitions tasks by due date. Groups are ordered by ascending
// date and the NoDateKey group is always present and always last, even when
// it is empty. Task order within a group follows the input.
func GroupByDate(tasks []*task.Task) []Group {
	byKey := make(map[string][]*task.Task)
	var undated []*task.Task
	for _, t := range tasks {
		if t == nil {
			continue
		}
		key := t.DateKey()
		if key == "" {
			undated = append(undated, t)
			continue
		}
		byKey[key] = append(byKey[key], t)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return lessKey(keys[i], keys[j])
	})

	groups := make([]Group, 0, len(keys)+1)
	for _, k := range keys {
		groups = append(groups, Group{Key: k, Tasks: byKey[k]})
	}
	return append(groups, Group{Key: NoDateKey, Tasks: undated})
}

// lessKey orders parsable dates chronologically ahead of anything that does
// not parse; unparsable keys sort lexically among themselves.
func lessKey(a, b string) bool {
	da, okA := ParseKey(a)
	db, okB := ParseKey(b)
	switch {
	case okA && okB:
		if da.Equal(db) {
			return a < b
		}
		return da.Before(db)
	case okA:
		return true
	case okB:
		return false
	}
	return a < b
}
