// Package mcp provides the Model Context Protocol server integration for
// tasklists.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/dnd"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/task"
)

// Service coordinates the state operations shared by the MCP tools and
// resources.
type Service struct {
	App *app.Service
}

var errNoService = errors.New("mcp: service is not configured")

// TaskDTO is a transport-friendly projection of a task.
type TaskDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	ListID    string `json:"listId"`
	ListName  string `json:"listName"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate,omitempty"`
	DueTime   string `json:"dueTime,omitempty"`
	DueLabel  string `json:"dueLabel,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ListDTO describes a list and how many active tasks it holds.
type ListDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	TaskCount int    `json:"taskCount"`
	Reserved  bool   `json:"reserved,omitempty"`
}

// GroupDTO is one date group.
type GroupDTO struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Tasks []TaskDTO `json:"tasks"`
}

// ListTasksOptions narrows ListTasks and GroupByDate. The session filters of
// the state are not touched.
type ListTasksOptions struct {
	Keyword          string   `json:"keyword"`
	Dates            []string `json:"dates"`
	Lists            []string `json:"lists"`
	IncludeCompleted bool     `json:"include_completed"`
	Deleted          bool     `json:"deleted"`
}

// CreateTaskOptions captures the parameters used to create a task. Due
// accepts anything dates.ParseDue does.
type CreateTaskOptions struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Due     string `json:"due"`
	DueTime string `json:"due_time"`
	List    string `json:"list"`
}

// UpdateTaskOptions changes the non-nil fields of a task.
type UpdateTaskOptions struct {
	Name      *string `json:"name"`
	Icon      *string `json:"icon"`
	Due       *string `json:"due"`
	DueTime   *string `json:"due_time"`
	List      *string `json:"list"`
	Completed *bool   `json:"completed"`
}

// NewService builds a service around an opened app service.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) do(ctx context.Context, fn func(st *state.State) error) error {
	if s.App == nil {
		return errNoService
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.App.Do(fn)
}

// ListTasks returns the active tasks, or the trash when opts.Deleted is set,
// that pass the given filters. Completed tasks are skipped unless
// IncludeCompleted is set.
func (s *Service) ListTasks(ctx context.Context, opts ListTasksOptions) ([]TaskDTO, error) {
	var out []TaskDTO
	err := s.do(ctx, func(st *state.State) error {
		tasks, err := selectTasks(st, opts)
		if err != nil {
			return err
		}
		out = toTaskDTOs(st, tasks)
		return nil
	})
	return out, err
}

// GroupByDate groups the selected tasks by due date, no-date last.
func (s *Service) GroupByDate(ctx context.Context, opts ListTasksOptions) ([]GroupDTO, error) {
	var out []GroupDTO
	err := s.do(ctx, func(st *state.State) error {
		tasks, err := selectTasks(st, opts)
		if err != nil {
			return err
		}
		now := st.Now()
		for _, g := range dates.GroupByDate(tasks) {
			out = append(out, GroupDTO{
				Key:   g.Key,
				Label: g.Label(now),
				Tasks: toTaskDTOs(st, g.Tasks),
			})
		}
		return nil
	})
	return out, err
}

// Task fetches an active or deleted task by id.
func (s *Service) Task(ctx context.Context, id string) (*TaskDTO, error) {
	var out *TaskDTO
	err := s.do(ctx, func(st *state.State) error {
		t := st.Task(id)
		if t == nil {
			t = st.DeletedTask(id)
		}
		if t == nil {
			return fmt.Errorf("%w: task %q", state.ErrNotFound, id)
		}
		out = toTaskDTO(st, t)
		return nil
	})
	return out, err
}

// CreateTask adds a task. An empty List means uncategorized.
func (s *Service) CreateTask(ctx context.Context, opts CreateTaskOptions) (*TaskDTO, error) {
	var out *TaskDTO
	err := s.do(ctx, func(st *state.State) error {
		in := state.TaskInput{
			Name:    strings.TrimSpace(opts.Name),
			Icon:    opts.Icon,
			DueTime: strings.TrimSpace(opts.DueTime),
		}
		if strings.TrimSpace(opts.List) != "" {
			l, err := resolveList(st, opts.List)
			if err != nil {
				return err
			}
			in.ListID = l.ID
		}
		due, err := dates.ParseDue(opts.Due, st.Now())
		if err != nil {
			return err
		}
		in.DueDate = due
		t, err := st.CreateTask(in)
		if err != nil {
			return err
		}
		out = toTaskDTO(st, t)
		return nil
	})
	return out, err
}

// UpdateTask applies opts to task id.
func (s *Service) UpdateTask(ctx context.Context, id string, opts UpdateTaskOptions) (*TaskDTO, error) {
	var out *TaskDTO
	err := s.do(ctx, func(st *state.State) error {
		patch := state.TaskPatch{
			Name:      opts.Name,
			Icon:      opts.Icon,
			DueTime:   opts.DueTime,
			Completed: opts.Completed,
		}
		if opts.Due != nil {
			due, err := dates.ParseDue(*opts.Due, st.Now())
			if err != nil {
				return err
			}
			patch.DueDate = &due
		}
		if opts.List != nil {
			l, err := resolveList(st, *opts.List)
			if err != nil {
				return err
			}
			patch.ListID = &l.ID
		}
		t, err := st.UpdateTask(id, patch)
		if err != nil {
			return err
		}
		out = toTaskDTO(st, t)
		return nil
	})
	return out, err
}

// ToggleTask flips the completion flag of task id.
func (s *Service) ToggleTask(ctx context.Context, id string) (*TaskDTO, error) {
	return s.mutateTask(ctx, func(st *state.State) (*task.Task, error) {
		return st.ToggleTaskCompletion(id)
	})
}

// DeleteTask moves task id to the trash.
func (s *Service) DeleteTask(ctx context.Context, id string) (*TaskDTO, error) {
	return s.mutateTask(ctx, func(st *state.State) (*task.Task, error) {
		return dnd.Drop(st, id, dnd.TrashTarget{})
	})
}

// RestoreTask brings task id back from the trash.
func (s *Service) RestoreTask(ctx context.Context, id string) (*TaskDTO, error) {
	return s.mutateTask(ctx, func(st *state.State) (*task.Task, error) {
		return st.RestoreTask(id)
	})
}

// MoveTask drops task id on target: a list id or name, a date heading such
// as "Tomorrow" or "2024-05-02", "No Due Date", or "trash".
func (s *Service) MoveTask(ctx context.Context, id, target string) (*TaskDTO, error) {
	return s.mutateTask(ctx, func(st *state.State) (*task.Task, error) {
		to, err := dnd.TargetFromLabel(st, target, st.Now())
		if err != nil {
			return nil, err
		}
		return dnd.Drop(st, id, to)
	})
}

func (s *Service) mutateTask(ctx context.Context, fn func(st *state.State) (*task.Task, error)) (*TaskDTO, error) {
	var out *TaskDTO
	err := s.do(ctx, func(st *state.State) error {
		t, err := fn(st)
		if err != nil {
			return err
		}
		out = toTaskDTO(st, t)
		return nil
	})
	return out, err
}

// ListLists returns every list in display order.
func (s *Service) ListLists(ctx context.Context) ([]ListDTO, error) {
	var out []ListDTO
	err := s.do(ctx, func(st *state.State) error {
		out = make([]ListDTO, 0, len(st.Lists))
		for _, l := range st.Lists {
			out = append(out, toListDTO(st, l))
		}
		return nil
	})
	return out, err
}

// List fetches one list with its active tasks.
func (s *Service) List(ctx context.Context, ref string) (*ListDTO, []TaskDTO, error) {
	var (
		list  *ListDTO
		tasks []TaskDTO
	)
	err := s.do(ctx, func(st *state.State) error {
		l, err := resolveList(st, ref)
		if err != nil {
			return err
		}
		dto := toListDTO(st, l)
		list = &dto
		var in []*task.Task
		for _, t := range st.Tasks {
			if t.ListID == l.ID {
				in = append(in, t)
			}
		}
		tasks = toTaskDTOs(st, in)
		return nil
	})
	return list, tasks, err
}

// CreateList adds a list at the end of the order.
func (s *Service) CreateList(ctx context.Context, name, icon string) (*ListDTO, error) {
	var out *ListDTO
	err := s.do(ctx, func(st *state.State) error {
		l, err := st.CreateList(name, icon)
		if err != nil {
			return err
		}
		dto := toListDTO(st, l)
		out = &dto
		return nil
	})
	return out, err
}

// DeleteList removes a list; its tasks move to uncategorized.
func (s *Service) DeleteList(ctx context.Context, ref string) error {
	return s.do(ctx, func(st *state.State) error {
		l, err := resolveList(st, ref)
		if err != nil {
			return err
		}
		return st.DeleteList(l.ID)
	})
}

// ReorderLists sets the list order. refs must name every list exactly once.
func (s *Service) ReorderLists(ctx context.Context, refs []string) ([]ListDTO, error) {
	var out []ListDTO
	err := s.do(ctx, func(st *state.State) error {
		ids := make([]string, 0, len(refs))
		for _, ref := range refs {
			l, err := resolveList(st, ref)
			if err != nil {
				return err
			}
			ids = append(ids, l.ID)
		}
		if err := st.ReorderLists(ids); err != nil {
			return err
		}
		for _, l := range st.Lists {
			out = append(out, toListDTO(st, l))
		}
		return nil
	})
	return out, err
}

// Summary counts the current state.
func (s *Service) Summary(ctx context.Context) (app.Summary, error) {
	var out app.Summary
	err := s.do(ctx, func(st *state.State) error {
		out = app.Summarize(st, st.Now())
		return nil
	})
	return out, err
}

func selectTasks(st *state.State, opts ListTasksOptions) ([]*task.Task, error) {
	f := state.Filters{Keyword: strings.TrimSpace(opts.Keyword)}
	for _, d := range opts.Dates {
		b, err := dates.ParseBucket(d)
		if err != nil {
			return nil, err
		}
		f.Dates = append(f.Dates, b)
	}
	for _, ref := range opts.Lists {
		l, err := resolveList(st, ref)
		if err != nil {
			return nil, err
		}
		f.Lists = append(f.Lists, l.ID)
	}

	source := st.Tasks
	if opts.Deleted {
		source = st.Deleted
	}
	now := st.Now()
	var out []*task.Task
	for _, t := range source {
		if t.Completed && !opts.IncludeCompleted && !opts.Deleted {
			continue
		}
		if f.Match(t, now) {
			out = append(out, t)
		}
	}
	return out, nil
}

func toTaskDTOs(st *state.State, tasks []*task.Task) []TaskDTO {
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *toTaskDTO(st, t))
	}
	return out
}

func toTaskDTO(st *state.State, t *task.Task) *TaskDTO {
	dto := &TaskDTO{
		ID:        t.ID,
		Name:      t.Name,
		Icon:      t.Icon,
		ListID:    t.ListID,
		Completed: t.Completed,
		DueDate:   task.Deref(t.DueDate),
		DueTime:   task.Deref(t.DueTime),
		CreatedAt: t.CreatedAt,
	}
	if l := st.List(t.ListID); l != nil {
		dto.ListName = l.Name
	}
	if key := t.DateKey(); key != "" {
		dto.DueLabel = dates.Label(key, st.Now())
	}
	return dto
}

func toListDTO(st *state.State, l *task.List) ListDTO {
	return ListDTO{
		ID:        l.ID,
		Name:      l.Name,
		Icon:      l.Icon,
		TaskCount: st.TaskCount(l.ID),
		Reserved:  l.Reserved(),
	}
}

func resolveList(st *state.State, ref string) (*task.List, error) {
	l := st.ResolveList(ref)
	if l == nil {
		return nil, fmt.Errorf("%w: list %q", state.ErrNotFound, ref)
	}
	return l, nil
}
