// Package edit provides the runner that changes fields of a task.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/glyph"
	"tableflip.dev/tasklists/pkg/printers"
	"tableflip.dev/tasklists/pkg/state"
)

// Edit changes the non-nil fields of a task. Due accepts anything
// dates.ParseDue does, so "none" clears it; an empty Time clears the time.
type Edit struct {
	ID   string
	Name *string
	Icon *string
	Due  *string
	Time *string
	List *string

	ShowID  bool
	Service *app.Service
	Out     io.Writer
}

var ErrNothingToDo = errors.New("edit: no fields to change")

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if n.Name == nil && n.Icon == nil && n.Due == nil && n.Time == nil && n.List == nil {
		return ErrNothingToDo
	}

	return n.Service.Do(func(st *state.State) error {
		patch := state.TaskPatch{Name: n.Name, DueTime: n.Time}
		if n.Icon != nil {
			icon := glyph.Normalize(*n.Icon)
			patch.Icon = &icon
		}
		if n.Due != nil {
			due, err := dates.ParseDue(*n.Due, st.Now())
			if err != nil {
				return err
			}
			patch.DueDate = &due
		}
		if n.List != nil {
			l := st.ResolveList(*n.List)
			if l == nil {
				return fmt.Errorf("%w: %q", state.ErrUnknownList, *n.List)
			}
			patch.ListID = &l.ID
		}

		t, err := st.UpdateTask(n.ID, patch)
		if err != nil {
			return err
		}
		pp := printers.PrettyPrint{ShowID: n.ShowID, Now: st.Now(), Out: n.Out}
		pp.NewLine()
		pp.Title(st.List(t.ListID).Name)
		pp.Tasks(t)
		return nil
	})
}
