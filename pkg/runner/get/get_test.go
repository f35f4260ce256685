package get

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/store"
)

var now = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.Local)

func seeded(t *testing.T) *app.Service {
	t.Helper()
	color.NoColor = true
	st, err := state.Open(store.NewMemory(), state.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("state.Open() = %v", err)
	}
	work := st.ResolveList("Work")
	_, _ = st.CreateTask(state.TaskInput{Name: "Report", ListID: work.ID, DueDate: "2024-05-01"})
	_, _ = st.CreateTask(state.TaskInput{Name: "Buy Milk", DueDate: "2024-05-02"})
	done, _ := st.CreateTask(state.TaskInput{Name: "Old chore"})
	_, _ = st.ToggleTaskCompletion(done.ID)
	return app.New(st)
}

func TestGetByList(t *testing.T) {
	var buf bytes.Buffer
	g := Get{Service: seeded(t), Out: &buf}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Personal", "Work - 1 task", "Report", "Buy Milk"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Old chore") {
		t.Fatal("completed tasks hidden without --all")
	}
}

func TestGetByDateJSON(t *testing.T) {
	var buf bytes.Buffer
	g := Get{View: "date", All: true, JSON: true, Service: seeded(t), Out: &buf}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	var got []JSONSection
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v\n%s", err, buf.String())
	}
	if len(got) != 3 {
		t.Fatalf("got %d sections, want 3", len(got))
	}
	if got[0].Title != "Today" || got[1].Title != "Tomorrow" || got[2].DateKey != dates.NoDateKey {
		t.Fatalf("unexpected sections %+v", got)
	}
	if len(got[2].Tasks) != 1 || got[2].Tasks[0].Name != "Old chore" {
		t.Fatalf("no-date section = %+v", got[2])
	}
}

func TestGetFilters(t *testing.T) {
	var buf bytes.Buffer
	g := Get{Keyword: "milk", Dates: []dates.Bucket{dates.Tomorrow}, JSON: true, View: "date", Service: seeded(t), Out: &buf}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	var got []JSONSection
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	// Tomorrow's group plus the always-present no-date group.
	if len(got) != 2 || len(got[0].Tasks) != 1 || got[0].Tasks[0].Name != "Buy Milk" || len(got[1].Tasks) != 0 {
		t.Fatalf("got %+v", got)
	}

	g = Get{Lists: []string{"nope"}, Service: seeded(t), Out: &buf}
	if err := g.Do(context.Background()); !errors.Is(err, state.ErrUnknownList) {
		t.Fatalf("err = %v, want ErrUnknownList", err)
	}
}
