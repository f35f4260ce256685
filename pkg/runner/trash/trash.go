// Package trash provides the runners for soft delete, restore and permanent
// deletion of tasks.
package trash

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/dnd"
	"tableflip.dev/tasklists/pkg/printers"
	"tableflip.dev/tasklists/pkg/state"
)

var errNoService = errors.New("trash: no service")

// Delete moves a task to the trash.
type Delete struct {
	ID      string
	Service *app.Service
	Out     io.Writer
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	return n.Service.Do(func(st *state.State) error {
		t, err := dnd.Drop(st, n.ID, dnd.TrashTarget{})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out(n.Out), "Moved %q to the trash.\n", t.Name)
		return err
	})
}

// Restore brings a task back from the trash.
type Restore struct {
	ID      string
	Service *app.Service
	Out     io.Writer
}

func (n *Restore) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	return n.Service.Do(func(st *state.State) error {
		t, err := st.RestoreTask(n.ID)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out(n.Out), "Restored %q to %s.\n", t.Name, st.List(t.ListID).Name)
		return err
	})
}

// Purge permanently deletes one trashed task, or all of them.
type Purge struct {
	ID      string
	All     bool
	Service *app.Service
	Out     io.Writer
}

func (n *Purge) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	if !n.All && n.ID == "" {
		return errors.New("purge: requires a task id or --all")
	}
	return n.Service.Do(func(st *state.State) error {
		if n.All {
			count, err := st.EmptyTrash()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out(n.Out), "Permanently deleted %d tasks.\n", count)
			return err
		}
		if err := st.PermanentlyDeleteTask(n.ID); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out(n.Out), "Permanently deleted %s.\n", n.ID)
		return err
	})
}

// Show prints the trash.
type Show struct {
	ShowID  bool
	JSON    bool
	Service *app.Service
	Out     io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	return n.Service.Do(func(st *state.State) error {
		deleted := st.DeletedTasks()
		pp := printers.PrettyPrint{ShowID: n.ShowID, Now: st.Now(), Out: n.Out}
		if n.JSON {
			return pp.JSON(deleted)
		}
		pp.NewLine()
		pp.TitleWithCount("Trash", len(deleted))
		pp.Tasks(deleted...)
		return nil
	})
}

func out(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return (&printers.PrettyPrint{}).Writer()
}
