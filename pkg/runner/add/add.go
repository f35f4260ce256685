// Package add provides the runner that creates tasks.
package add

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/glyph"
	"tableflip.dev/tasklists/pkg/printers"
	"tableflip.dev/tasklists/pkg/snake"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/task"
)

// Add creates one task. List may be a list id or name and Due anything
// dates.ParseDue accepts.
type Add struct {
	Name        string
	Icon        string
	Due         string
	Time        string
	List        string
	Interactive bool
	ShowID      bool
	JSON        bool

	Service *app.Service
	// Prompt overrides the promptui wizard, mainly for tests.
	Prompt func(lists []*task.List, in state.TaskInput) (state.TaskInput, error)
	Out    io.Writer
}

// Do creates the task and prints the list it landed in.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	return n.Service.Do(func(st *state.State) error {
		now := st.Now()
		in := state.TaskInput{
			Name:    n.Name,
			Icon:    glyph.Normalize(n.Icon),
			DueTime: n.Time,
		}
		if n.List != "" {
			l := st.ResolveList(n.List)
			if l == nil {
				return fmt.Errorf("%w: %q", state.ErrUnknownList, n.List)
			}
			in.ListID = l.ID
		}
		due, err := dates.ParseDue(n.Due, now)
		if err != nil {
			return err
		}
		in.DueDate = due

		if n.Interactive {
			prompt := n.Prompt
			if prompt == nil {
				prompt = func(lists []*task.List, in state.TaskInput) (state.TaskInput, error) {
					w := snake.Wizard{Lists: lists, Now: now}
					return w.PromptTask(in)
				}
			}
			if in, err = prompt(st.Lists, in); err != nil {
				return err
			}
		}

		t, err := st.CreateTask(in)
		if err != nil {
			return err
		}

		pp := printers.PrettyPrint{ShowID: n.ShowID, Now: now, Out: n.Out}
		if n.JSON {
			return pp.JSON(t)
		}
		pp.NewLine()
		l := st.List(t.ListID)
		pp.TitleWithCount(l.Name, st.TaskCount(l.ID))
		pp.Tasks(tasksIn(st, l.ID)...)
		return nil
	})
}

func tasksIn(st *state.State, listID string) []*task.Task {
	out := make([]*task.Task, 0)
	for _, t := range st.Tasks {
		if t.ListID == listID {
			out = append(out, t)
		}
	}
	return out
}
