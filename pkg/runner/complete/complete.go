// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/printers"
	"tableflip.dev/tasklists/pkg/state"
)

// Complete flips the completed flag of a task.
type Complete struct {
	ID      string
	Service *app.Service
	Out     io.Writer
}

// Do toggles the task and prints it.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	return n.Service.Do(func(st *state.State) error {
		t, err := st.ToggleTaskCompletion(n.ID)
		if err != nil {
			return err
		}
		pp := printers.PrettyPrint{ShowID: true, Now: st.Now(), Out: n.Out}
		pp.NewLine()
		pp.Title(st.List(t.ListID).Name)
		pp.Tasks(t)
		return nil
	})
}
