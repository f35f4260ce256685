package trash

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/store"
)

func newService(t *testing.T, names ...string) (*app.Service, []string) {
	t.Helper()
	color.NoColor = true
	st, err := state.Open(store.NewMemory())
	if err != nil {
		t.Fatalf("state.Open() = %v", err)
	}
	ids := make([]string, 0, len(names))
	for _, n := range names {
		tk, err := st.CreateTask(state.TaskInput{Name: n})
		if err != nil {
			t.Fatalf("CreateTask() = %v", err)
		}
		ids = append(ids, tk.ID)
	}
	return app.New(st), ids
}

func TestDeleteRestore(t *testing.T) {
	svc, ids := newService(t, "milk")
	ctx := context.Background()
	var buf bytes.Buffer

	if err := (&Delete{ID: ids[0], Service: svc, Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("Delete = %v", err)
	}
	if err := (&Show{Service: svc, Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("Show = %v", err)
	}
	if !strings.Contains(buf.String(), "Trash - 1 task") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}

	buf.Reset()
	if err := (&Restore{ID: ids[0], Service: svc, Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("Restore = %v", err)
	}
	if !strings.Contains(buf.String(), `Restored "milk" to Uncategorized`) {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	if err := (&Restore{ID: ids[0], Service: svc, Out: &buf}).Do(ctx); !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPurge(t *testing.T) {
	svc, ids := newService(t, "a", "b", "c")
	ctx := context.Background()
	var buf bytes.Buffer
	for _, id := range ids {
		_ = (&Delete{ID: id, Service: svc, Out: &buf}).Do(ctx)
	}

	if err := (&Purge{Service: svc, Out: &buf}).Do(ctx); err == nil {
		t.Fatal("purge without id or --all should fail")
	}
	if err := (&Purge{ID: ids[0], Service: svc, Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("Purge = %v", err)
	}
	buf.Reset()
	if err := (&Purge{All: true, Service: svc, Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("Purge all = %v", err)
	}
	if !strings.Contains(buf.String(), "Permanently deleted 2 tasks") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}
