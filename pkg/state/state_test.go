package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/tasklists/pkg/store"
	"tableflip.dev/tasklists/pkg/task"
)

// Wednesday, May 1 2024.
var now = time.Date(2024, time.May, 1, 15, 30, 0, 0, time.Local)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newState(t *testing.T, mem *store.Memory) *State {
	t.Helper()
	s, err := Open(mem, WithClock(func() time.Time { return now }), WithIDs(sequentialIDs()))
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	return s
}

func stored(t *testing.T, mem *store.Memory, key string, into interface{}) {
	t.Helper()
	data, err := mem.Read(key)
	if err != nil {
		t.Fatalf("Read(%q) = %v", key, err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		t.Fatalf("Unmarshal(%q) = %v", key, err)
	}
}

func TestInitializeSeedsEmptyStore(t *testing.T) {
	mem := store.NewMemory()
	s := newState(t, mem)

	want := []string{"Personal", "Work", "Shopping", "Uncategorized"}
	if len(s.Lists) != len(want) {
		t.Fatalf("got %d lists, want %d", len(s.Lists), len(want))
	}
	for i, name := range want {
		if s.Lists[i].Name != name {
			t.Fatalf("list %d = %q, want %q", i, s.Lists[i].Name, name)
		}
	}
	if s.Lists[3].ID != task.UncategorizedID {
		t.Fatalf("last list id = %q, want uncategorized", s.Lists[3].ID)
	}

	var lists []*task.List
	stored(t, mem, store.KeyLists, &lists)
	if len(lists) != 4 {
		t.Fatalf("seed was not persisted, got %d lists", len(lists))
	}
	var tasks []*task.Task
	stored(t, mem, store.KeyTasks, &tasks)
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("tasks should persist as an empty array, got %v", tasks)
	}
}

func TestInitializeSeedsWhenListsEmpty(t *testing.T) {
	mem := store.NewMemory()
	_ = mem.Write(store.KeyLists, []byte(`[]`))
	s := newState(t, mem)
	if len(s.Lists) != 4 {
		t.Fatalf("got %d lists, want the seed", len(s.Lists))
	}
}

func TestInitializeResetsMalformedData(t *testing.T) {
	mem := store.NewMemory()
	_ = mem.Write(store.KeyLists, []byte(`[{"id":"a","name":"A","icon":"fa-list"}]`))
	_ = mem.Write(store.KeyTasks, []byte(`{not json`))
	_ = mem.Write(store.KeyDeletedTasks, []byte(`[{"id":"x","name":"gone","listId":"a"}]`))

	s := newState(t, mem)
	if len(s.Lists) != 4 || s.Lists[0].Name != "Personal" {
		t.Fatalf("expected seed lists after reset, got %v", s.Lists)
	}
	if len(s.Tasks) != 0 || len(s.Deleted) != 0 {
		t.Fatalf("expected empty collections after reset, got %d tasks %d deleted", len(s.Tasks), len(s.Deleted))
	}

	var deleted []*task.Task
	stored(t, mem, store.KeyDeletedTasks, &deleted)
	if len(deleted) != 0 {
		t.Fatalf("reset was not persisted: %v", deleted)
	}
}

func TestInitializeAddsUncategorizedAndRepairsOrphans(t *testing.T) {
	mem := store.NewMemory()
	_ = mem.Write(store.KeyLists, []byte(`[{"id":"work","name":"Work","icon":"fa-briefcase"}]`))
	_ = mem.Write(store.KeyTasks, []byte(`[
		{"id":"t1","name":"Report","icon":"fa-tasks","dueDate":null,"dueTime":null,"listId":"work","completed":false,"createdAt":""},
		{"id":"t2","name":"Lost","icon":"fa-tasks","dueDate":null,"dueTime":null,"listId":"gone","completed":false,"createdAt":""}
	]`))

	s := newState(t, mem)
	if len(s.Lists) != 2 || s.Lists[1].ID != task.UncategorizedID {
		t.Fatalf("expected uncategorized appended, got %v", s.ListIDs())
	}
	if got := s.Task("t1").ListID; got != "work" {
		t.Fatalf("t1 list = %q, want work", got)
	}
	if got := s.Task("t2").ListID; got != task.UncategorizedID {
		t.Fatalf("t2 list = %q, want uncategorized", got)
	}
}

func TestReloadPicksUpExternalWrites(t *testing.T) {
	mem := store.NewMemory()
	s := newState(t, mem)
	s.SetKeyword("milk")

	other := newState(t, mem)
	if _, err := other.CreateTask(TaskInput{Name: "Buy Milk"}); err != nil {
		t.Fatalf("CreateTask() = %v", err)
	}

	if err := s.Reload(); err != nil {
		t.Fatalf("Reload() = %v", err)
	}
	if len(s.Tasks) != 1 {
		t.Fatalf("got %d tasks after reload, want 1", len(s.Tasks))
	}
	if s.Filters.Keyword != "milk" {
		t.Fatal("reload should keep filters")
	}
}

func TestReloadKeepsStateOnPartialWrite(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":     {},
		"truncated": []byte(`[{"id":"id-1","na`),
		"no lists":  []byte(`[]`),
	} {
		t.Run(name, func(t *testing.T) {
			mem := store.NewMemory()
			s := newState(t, mem)
			report, err := s.CreateTask(TaskInput{Name: "Report", ListID: "id-2"})
			if err != nil {
				t.Fatalf("CreateTask() = %v", err)
			}
			wantLists := s.ListIDs()

			if err := mem.Write(store.KeyLists, data); err != nil {
				t.Fatalf("Write() = %v", err)
			}
			if err := s.Reload(); err != nil {
				t.Fatalf("Reload() = %v", err)
			}

			if got := s.ListIDs(); fmt.Sprint(got) != fmt.Sprint(wantLists) {
				t.Fatalf("lists after reload = %v, want %v", got, wantLists)
			}
			if got := s.Task(report.ID).ListID; got != "id-2" {
				t.Fatalf("task list after reload = %q, want id-2", got)
			}
			raw, err := mem.Read(store.KeyLists)
			if err != nil {
				t.Fatalf("Read() = %v", err)
			}
			if string(raw) != string(data) {
				t.Fatalf("reload should not persist, stored lists = %q", raw)
			}
		})
	}
}

func TestManualSave(t *testing.T) {
	mem := store.NewMemory()
	s, err := Open(mem, WithManualSave(), WithIDs(sequentialIDs()))
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if _, err := s.CreateTask(TaskInput{Name: "draft"}); err != nil {
		t.Fatalf("CreateTask() = %v", err)
	}

	var tasks []*task.Task
	stored(t, mem, store.KeyTasks, &tasks)
	if len(tasks) != 0 {
		t.Fatal("manual save should not persist on mutation")
	}

	if err := s.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	stored(t, mem, store.KeyTasks, &tasks)
	if len(tasks) != 1 {
		t.Fatalf("got %d stored tasks after Save, want 1", len(tasks))
	}
}

type failingStore struct {
	*store.Memory
}

func (failingStore) Read(string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestInitializeReturnsReadErrors(t *testing.T) {
	_, err := Open(failingStore{store.NewMemory()})
	if err == nil {
		t.Fatal("expected an error")
	}
}
