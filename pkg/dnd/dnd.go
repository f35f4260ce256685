// Package dnd turns drag-and-drop gestures into state mutations. A host
// resolves what was dropped and where, builds a Target and calls Drop; the
// target always carries canonical values, never rendered headings.
package dnd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/task"
)

// ErrBadTarget is returned for targets Drop cannot handle.
var ErrBadTarget = errors.New("dnd: unsupported drop target")

// Target is where a task was dropped.
type Target interface {
	fmt.Stringer
	target()
}

// ListTarget is a list section.
type ListTarget struct {
	ListID string
}

// DateTarget is a date section. An empty Date is the no-date section.
type DateTarget struct {
	Date string
}

// TrashTarget is the trash zone.
type TrashTarget struct{}

func (ListTarget) target()  {}
func (DateTarget) target()  {}
func (TrashTarget) target() {}

func (t ListTarget) String() string { return "list " + t.ListID }

func (t DateTarget) String() string {
	if t.Date == "" {
		return "no date"
	}
	return "date " + t.Date
}

func (TrashTarget) String() string { return "trash" }

// Drop applies a task drop. Dropping onto a list moves the task there,
// onto a date sets or clears its due date, onto the trash soft-deletes it.
func Drop(s *state.State, taskID string, to Target) (*task.Task, error) {
	switch t := to.(type) {
	case ListTarget:
		return s.MoveTaskToList(taskID, t.ListID)
	case DateTarget:
		due := ""
		if t.Date != "" && t.Date != dates.NoDateKey {
			d, ok := dates.ParseKey(t.Date)
			if !ok {
				return nil, fmt.Errorf("%w: bad date %q", ErrBadTarget, t.Date)
			}
			due = dates.Key(d)
		}
		return s.UpdateTask(taskID, state.TaskPatch{DueDate: &due})
	case TrashTarget:
		return s.DeleteTask(taskID)
	}
	return nil, fmt.Errorf("%w: %v", ErrBadTarget, to)
}

// DropList moves list id to position index in the list order, shifting the
// lists in between. The index is clamped to the valid range.
func DropList(s *state.State, id string, index int) error {
	ids := s.ListIDs()
	from := -1
	for i, v := range ids {
		if v == id {
			from = i
			break
		}
	}
	if from < 0 {
		return fmt.Errorf("%w: list %q", state.ErrNotFound, id)
	}
	if index < 0 {
		index = 0
	}
	if index >= len(ids) {
		index = len(ids) - 1
	}
	if index == from {
		return nil
	}

	ids = append(ids[:from], ids[from+1:]...)
	ids = append(ids[:index], append([]string{id}, ids[index:]...)...)
	return s.ReorderLists(ids)
}

// NewTaskDrop creates a task where the add control was dropped: in the
// target list, or with the target date. Dropping on the trash is refused.
func NewTaskDrop(s *state.State, in state.TaskInput, to Target) (*task.Task, error) {
	switch t := to.(type) {
	case ListTarget:
		in.ListID = t.ListID
	case DateTarget:
		if t.Date == dates.NoDateKey {
			t.Date = ""
		}
		in.DueDate = t.Date
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadTarget, to)
	}
	return s.CreateTask(in)
}

// TargetFromLabel builds a target from a rendered section heading, for hosts
// that only have the text. Trash and list names are tried before dates.
// Date headings carry no year, so only dates within a year of now resolve;
// hosts that know the date should pass a DateTarget instead.
func TargetFromLabel(s *state.State, label string, now time.Time) (Target, error) {
	trimmed := strings.TrimSpace(label)
	if strings.EqualFold(trimmed, "trash") {
		return TrashTarget{}, nil
	}
	if l := s.ResolveList(trimmed); l != nil {
		return ListTarget{ListID: l.ID}, nil
	}
	key, err := dates.ParseLabel(trimmed, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTarget, err)
	}
	return DateTarget{Date: key}, nil
}
