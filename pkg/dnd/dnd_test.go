package dnd

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/store"
	"tableflip.dev/tasklists/pkg/task"
)

// Wednesday, May 1 2024.
var now = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.Local)

func newState(t *testing.T) *state.State {
	t.Helper()
	n := 0
	s, err := state.Open(store.NewMemory(),
		state.WithClock(func() time.Time { return now }),
		state.WithIDs(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}))
	require.NoError(t, err)
	return s
}

func TestDropOnList(t *testing.T) {
	s := newState(t)
	tk, err := s.CreateTask(state.TaskInput{Name: "report"})
	require.NoError(t, err)

	got, err := Drop(s, tk.ID, ListTarget{ListID: "id-2"})
	require.NoError(t, err)
	assert.Equal(t, "id-2", got.ListID)

	_, err = Drop(s, tk.ID, ListTarget{ListID: "nope"})
	assert.ErrorIs(t, err, state.ErrUnknownList)
	assert.Equal(t, "id-2", s.Task(tk.ID).ListID)
}

func TestDropOnDate(t *testing.T) {
	s := newState(t)
	tk, err := s.CreateTask(state.TaskInput{Name: "report", DueTime: "09:00"})
	require.NoError(t, err)

	got, err := Drop(s, tk.ID, DateTarget{Date: "2024-05-03"})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-03", task.Deref(got.DueDate))
	assert.Equal(t, "09:00", task.Deref(got.DueTime), "due time is kept")

	got, err = Drop(s, tk.ID, DateTarget{})
	require.NoError(t, err)
	assert.Nil(t, got.DueDate)

	_, err = Drop(s, tk.ID, DateTarget{Date: "Friday"})
	assert.ErrorIs(t, err, ErrBadTarget)
}

func TestDropOnTrash(t *testing.T) {
	s := newState(t)
	tk, err := s.CreateTask(state.TaskInput{Name: "old"})
	require.NoError(t, err)

	_, err = Drop(s, tk.ID, TrashTarget{})
	require.NoError(t, err)
	assert.Nil(t, s.Task(tk.ID))
	assert.NotNil(t, s.DeletedTask(tk.ID))

	_, err = Drop(s, "missing", TrashTarget{})
	assert.ErrorIs(t, err, state.ErrNotFound)
}

func TestDropList(t *testing.T) {
	s := newState(t)
	require.Equal(t, []string{"id-1", "id-2", "id-3", task.UncategorizedID}, s.ListIDs())

	require.NoError(t, DropList(s, task.UncategorizedID, 0))
	assert.Equal(t, []string{task.UncategorizedID, "id-1", "id-2", "id-3"}, s.ListIDs())

	require.NoError(t, DropList(s, "id-1", 99))
	assert.Equal(t, []string{task.UncategorizedID, "id-2", "id-3", "id-1"}, s.ListIDs())

	require.NoError(t, DropList(s, "id-3", 1))
	assert.Equal(t, []string{task.UncategorizedID, "id-3", "id-2", "id-1"}, s.ListIDs())

	assert.ErrorIs(t, DropList(s, "nope", 0), state.ErrNotFound)
}

func TestNewTaskDrop(t *testing.T) {
	s := newState(t)

	got, err := NewTaskDrop(s, state.TaskInput{Name: "milk"}, ListTarget{ListID: "id-3"})
	require.NoError(t, err)
	assert.Equal(t, "id-3", got.ListID)

	got, err = NewTaskDrop(s, state.TaskInput{Name: "call"}, DateTarget{Date: "2024-05-02"})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", task.Deref(got.DueDate))
	assert.Equal(t, task.UncategorizedID, got.ListID)

	_, err = NewTaskDrop(s, state.TaskInput{Name: "x"}, TrashTarget{})
	assert.ErrorIs(t, err, ErrBadTarget)
}

func TestTargetFromLabel(t *testing.T) {
	s := newState(t)

	cases := map[string]Target{
		"Trash":           TrashTarget{},
		"work":            ListTarget{ListID: "id-2"},
		"Today":           DateTarget{Date: "2024-05-01"},
		"Tomorrow":        DateTarget{Date: "2024-05-02"},
		"Saturday, May 4": DateTarget{Date: "2024-05-04"},
		"No Due Date":     DateTarget{},
	}
	for label, want := range cases {
		got, err := TargetFromLabel(s, label, now)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}

	_, err := TargetFromLabel(s, "Someday", now)
	assert.ErrorIs(t, err, ErrBadTarget)
}
