// Package move provides the runner that reassigns a task to another list.
package move

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

// Move drops a task onto a list, given by id or name.
type Move struct {
	ID      string
	List    string
	Service *app.Service
	Out     io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}

	return n.Service.Do(func(st *state.State) error {
		l := st.ResolveList(n.List)
		if l == nil {
			return fmt.Errorf("%w: %q", state.ErrUnknownList, n.List)
		}
		t, err := dnd.Drop(st, n.ID, dnd.ListTarget{ListID: l.ID})
		if err != nil {
			return err
		}
		pp := printers.PrettyPrint{ShowID: true, Now: st.Now(), Out: n.Out}
		pp.NewLine()
		pp.Title(l.Name)
		pp.Tasks(t)
		return nil
	})
}
