// Package get provides the runner that prints tasks by list or by date.
package get

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/printers"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/task"
)

type Get struct {
	// View is "list" or "date"; empty keeps the session default.
	View    string
	Keyword string
	Dates   []dates.Bucket
	// Lists are list ids or names.
	Lists []string
	// All includes completed tasks.
	All    bool
	ShowID bool
	JSON   bool

	Service *app.Service
	Out     io.Writer
}

// JSONSection is the --json shape of one section.
type JSONSection struct {
	Title   string       `json:"title"`
	ListID  string       `json:"listId,omitempty"`
	DateKey string       `json:"date,omitempty"`
	Tasks   []*task.Task `json:"tasks"`
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	return n.Service.Do(func(st *state.State) error {
		if n.View != "" {
			v, err := state.ParseView(n.View)
			if err != nil {
				return err
			}
			st.View = v
		}

		filters := state.Filters{Keyword: n.Keyword, Dates: n.Dates}
		for _, ref := range n.Lists {
			l := st.ResolveList(ref)
			if l == nil {
				return fmt.Errorf("%w: %q", state.ErrUnknownList, ref)
			}
			filters.Lists = append(filters.Lists, l.ID)
		}
		st.Filters = filters

		sections := st.Sections()
		if !n.All {
			for i := range sections {
				sections[i].Tasks = incomplete(sections[i].Tasks)
			}
		}

		pp := printers.PrettyPrint{ShowID: n.ShowID, Now: st.Now(), Out: n.Out}
		if n.JSON {
			out := make([]JSONSection, 0, len(sections))
			for _, s := range sections {
				tasks := s.Tasks
				if tasks == nil {
					tasks = []*task.Task{}
				}
				out = append(out, JSONSection{Title: s.Title, ListID: s.ListID, DateKey: s.DateKey, Tasks: tasks})
			}
			return pp.JSON(out)
		}

		pp.NewLine()
		pp.Sections(sections)
		return nil
	})
}

func incomplete(all []*task.Task) []*task.Task {
	c := make([]*task.Task, 0, len(all))
	for _, a := range all {
		if !a.Completed {
			c = append(c, a)
		}
	}
	return c
}
