package complete

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/glyph"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/store"
)

func TestCompleteToggles(t *testing.T) {
	color.NoColor = true
	st, err := state.Open(store.NewMemory())
	if err != nil {
		t.Fatalf("state.Open() = %v", err)
	}
	tk, err := st.CreateTask(state.TaskInput{Name: "milk"})
	if err != nil {
		t.Fatalf("CreateTask() = %v", err)
	}
	svc := app.New(st)
	var buf bytes.Buffer

	c := &Complete{ID: tk.ID, Service: svc, Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	if !st.Task(tk.ID).Completed {
		t.Fatalf("task not completed")
	}
	if !strings.Contains(buf.String(), glyph.Completed+" ") || !strings.Contains(buf.String(), "Uncategorized") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}

	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	if st.Task(tk.ID).Completed {
		t.Fatalf("second toggle did not reopen the task")
	}

	missing := &Complete{ID: "nope", Service: svc, Out: &buf}
	if err := missing.Do(context.Background()); !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCompleteWithoutService(t *testing.T) {
	if err := (&Complete{ID: "x"}).Do(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
}
