package state

import (
	"fmt"
	"strings"

	"tableflip.dev/tasklists/pkg/task"
)

// TaskInput describes a task to create.
type TaskInput struct {
	Name    string
	Icon    string
	DueDate string
	DueTime string
	// ListID must name an existing list; create checks it the same way
	// MoveTaskToList does. Empty means uncategorized.
	ListID string
}

// TaskPatch holds the fields to change on a task; nil fields are left
// untouched. A non-nil empty DueDate or DueTime clears that field.
type TaskPatch struct {
	Name      *string
	Icon      *string
	DueDate   *string
	DueTime   *string
	ListID    *string
	Completed *bool
}

// CreateTask appends a new incomplete task. An empty name is allowed. An
// empty ListID files the task under uncategorized; an unknown one is
// rejected with ErrUnknownList.
func (s *State) CreateTask(in TaskInput) (*task.Task, error) {
	listID := strings.TrimSpace(in.ListID)
	if listID == "" {
		listID = task.UncategorizedID
	}
	if s.List(listID) == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, listID)
	}
	icon := in.Icon
	if icon == "" {
		icon = task.DefaultTaskIcon
	}

	t := &task.Task{
		ID:        s.newID(),
		Name:      in.Name,
		Icon:      icon,
		DueDate:   task.StringPtr(strings.TrimSpace(in.DueDate)),
		DueTime:   task.StringPtr(strings.TrimSpace(in.DueTime)),
		ListID:    listID,
		Completed: false,
		CreatedAt: s.now().UTC().Format(task.CreatedLayout),
	}
	s.Tasks = append(s.Tasks, t)
	return t, s.commit()
}

// UpdateTask merges patch into the task with id.
func (s *State) UpdateTask(id string, patch TaskPatch) (*task.Task, error) {
	i := indexOfTask(s.Tasks, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: task %q", ErrNotFound, id)
	}
	if patch.ListID != nil && s.List(*patch.ListID) == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, *patch.ListID)
	}

	t := s.Tasks[i]
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Icon != nil {
		t.Icon = *patch.Icon
		if t.Icon == "" {
			t.Icon = task.DefaultTaskIcon
		}
	}
	if patch.DueDate != nil {
		t.DueDate = task.StringPtr(strings.TrimSpace(*patch.DueDate))
	}
	if patch.DueTime != nil {
		t.DueTime = task.StringPtr(strings.TrimSpace(*patch.DueTime))
	}
	if patch.ListID != nil {
		t.ListID = *patch.ListID
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	return t, s.commit()
}

// ToggleTaskCompletion flips the completed flag.
func (s *State) ToggleTaskCompletion(id string) (*task.Task, error) {
	i := indexOfTask(s.Tasks, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: task %q", ErrNotFound, id)
	}
	t := s.Tasks[i]
	t.Completed = !t.Completed
	return t, s.commit()
}

// DeleteTask moves the task, unchanged, to the deleted collection.
func (s *State) DeleteTask(id string) (*task.Task, error) {
	i := indexOfTask(s.Tasks, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: task %q", ErrNotFound, id)
	}
	t := s.Tasks[i]
	s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
	s.Deleted = append(s.Deleted, t)
	return t, s.commit()
}

// RestoreTask moves a deleted task back to the active collection. When its
// list is gone it is reassigned to the first list, or to uncategorized if
// there are no lists at all.
func (s *State) RestoreTask(id string) (*task.Task, error) {
	i := indexOfTask(s.Deleted, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: deleted task %q", ErrNotFound, id)
	}
	t := s.Deleted[i]
	if s.List(t.ListID) == nil {
		if len(s.Lists) > 0 {
			t.ListID = s.Lists[0].ID
		} else {
			t.ListID = task.UncategorizedID
		}
	}
	s.Deleted = append(s.Deleted[:i], s.Deleted[i+1:]...)
	s.Tasks = append(s.Tasks, t)
	return t, s.commit()
}

// PermanentlyDeleteTask drops a task from the deleted collection. Active
// tasks are never touched.
func (s *State) PermanentlyDeleteTask(id string) error {
	i := indexOfTask(s.Deleted, id)
	if i < 0 {
		return fmt.Errorf("%w: deleted task %q", ErrNotFound, id)
	}
	s.Deleted = append(s.Deleted[:i], s.Deleted[i+1:]...)
	return s.commit()
}

// EmptyTrash permanently deletes every deleted task and returns how many
// were removed.
func (s *State) EmptyTrash() (int, error) {
	n := len(s.Deleted)
	if n == 0 {
		return 0, nil
	}
	s.Deleted = nil
	return n, s.commit()
}

// MoveTaskToList reassigns a task. The target list must exist.
func (s *State) MoveTaskToList(id, listID string) (*task.Task, error) {
	i := indexOfTask(s.Tasks, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: task %q", ErrNotFound, id)
	}
	if s.List(listID) == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, listID)
	}
	t := s.Tasks[i]
	t.ListID = listID
	return t, s.commit()
}

// Task returns the active task with id, or nil.
func (s *State) Task(id string) *task.Task {
	if i := indexOfTask(s.Tasks, id); i >= 0 {
		return s.Tasks[i]
	}
	return nil
}

// DeletedTask returns the deleted task with id, or nil.
func (s *State) DeletedTask(id string) *task.Task {
	if i := indexOfTask(s.Deleted, id); i >= 0 {
		return s.Deleted[i]
	}
	return nil
}

// FilteredTasks returns the active tasks passing the current filters, in
// collection order.
func (s *State) FilteredTasks() []*task.Task {
	now := s.now()
	out := make([]*task.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if s.Filters.Match(t, now) {
			out = append(out, t)
		}
	}
	return out
}

// IncompleteTasks returns every active task not yet completed. Filters are
// deliberately ignored; this feeds summary counts.
func (s *State) IncompleteTasks() []*task.Task {
	out := make([]*task.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func indexOfTask(tasks []*task.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// DeletedTasks returns the deleted collection in deletion order.
func (s *State) DeletedTasks() []*task.Task {
	return append([]*task.Task(nil), s.Deleted...)
}
