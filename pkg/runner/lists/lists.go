// Package lists provides the runners that manage lists.
package lists

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/dnd"
	"tableflip.dev/tasklists/pkg/glyph"
	"tableflip.dev/tasklists/pkg/printers"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/task"
)

var errNoService = errors.New("lists: no service")

// Get prints every list with its active task count.
type Get struct {
	ShowID  bool
	JSON    bool
	Service *app.Service
	Out     io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	return n.Service.Do(func(st *state.State) error {
		return printLists(st, n.ShowID, n.JSON, n.Out)
	})
}

// Add creates a list.
type Add struct {
	Name    string
	Icon    string
	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	return n.Service.Do(func(st *state.State) error {
		if _, err := st.CreateList(n.Name, glyph.Normalize(n.Icon)); err != nil {
			return err
		}
		return printLists(st, true, false, n.Out)
	})
}

// Rename updates a list's name, icon or id. List is an id or name.
type Rename struct {
	List    string
	Name    *string
	Icon    *string
	ID      *string
	Service *app.Service
	Out     io.Writer
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	return n.Service.Do(func(st *state.State) error {
		l, err := resolve(st, n.List)
		if err != nil {
			return err
		}
		patch := state.ListPatch{Name: n.Name, ID: n.ID}
		if n.Icon != nil {
			icon := glyph.Normalize(*n.Icon)
			patch.Icon = &icon
		}
		if _, err := st.UpdateList(l.ID, patch); err != nil {
			return err
		}
		return printLists(st, true, false, n.Out)
	})
}

// Delete removes a list; its tasks move to uncategorized.
type Delete struct {
	List    string
	Service *app.Service
	Out     io.Writer
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	return n.Service.Do(func(st *state.State) error {
		l, err := resolve(st, n.List)
		if err != nil {
			return err
		}
		if err := st.DeleteList(l.ID); err != nil {
			return err
		}
		return printLists(st, true, false, n.Out)
	})
}

// Reorder sets the list order. With a single list and Position >= 0 it
// moves that list to Position instead.
type Reorder struct {
	Lists    []string
	Position int
	Service  *app.Service
	Out      io.Writer
}

func (n *Reorder) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	return n.Service.Do(func(st *state.State) error {
		ids := make([]string, 0, len(n.Lists))
		for _, ref := range n.Lists {
			l, err := resolve(st, ref)
			if err != nil {
				return err
			}
			ids = append(ids, l.ID)
		}

		var err error
		if len(ids) == 1 && n.Position >= 0 {
			err = dnd.DropList(st, ids[0], n.Position)
		} else {
			err = st.ReorderLists(ids)
		}
		if err != nil {
			return err
		}
		return printLists(st, true, false, n.Out)
	})
}

func resolve(st *state.State, ref string) (*task.List, error) {
	l := st.ResolveList(ref)
	if l == nil {
		return nil, fmt.Errorf("%w: list %q", state.ErrNotFound, ref)
	}
	return l, nil
}

func printLists(st *state.State, showID, asJSON bool, w io.Writer) error {
	pp := printers.PrettyPrint{ShowID: showID, Out: w}
	if asJSON {
		return pp.JSON(st.Lists)
	}
	pp.NewLine()
	pp.Lists(st.Lists, st.TaskCount)
	return nil
}
