package state

import (
	"testing"

	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/store"
)

func TestEmptyFiltersReturnEverything(t *testing.T) {
	s := newState(t, store.NewMemory())
	for _, name := range []string{"c", "a", "b"} {
		_, _ = s.CreateTask(TaskInput{Name: name})
	}
	if !s.Filters.Empty() {
		t.Fatal("fresh state should have no filters")
	}
	got := s.FilteredTasks()
	if len(got) != len(s.Tasks) {
		t.Fatalf("got %d tasks, want %d", len(got), len(s.Tasks))
	}
	for i := range got {
		if got[i] != s.Tasks[i] {
			t.Fatalf("order changed at %d", i)
		}
	}
}

func TestKeywordIsCaseInsensitive(t *testing.T) {
	s := newState(t, store.NewMemory())
	milk, _ := s.CreateTask(TaskInput{Name: "Buy Milk"})
	_, _ = s.CreateTask(TaskInput{Name: "Call mom"})

	s.SetKeyword("milk")
	got := s.FilteredTasks()
	if len(got) != 1 || got[0].ID != milk.ID {
		t.Fatalf("got %v, want only Buy Milk", got)
	}
}

func TestKeywordIsUsedAsGiven(t *testing.T) {
	s := newState(t, store.NewMemory())
	milk, _ := s.CreateTask(TaskInput{Name: "Buy Milk"})
	_, _ = s.CreateTask(TaskInput{Name: "Milkshake"})
	_, _ = s.CreateTask(TaskInput{Name: "errands"})

	s.SetKeyword(" milk")
	got := s.FilteredTasks()
	if len(got) != 1 || got[0].ID != milk.ID {
		t.Fatalf("got %v, want only Buy Milk", got)
	}

	s.SetKeyword(" ")
	if s.Filters.Empty() {
		t.Fatal("a whitespace keyword is still a filter")
	}
	if got := s.FilteredTasks(); len(got) != 1 || got[0].ID != milk.ID {
		t.Fatalf("got %v, want only names containing a space", got)
	}
}

func TestDateFiltersOrTogether(t *testing.T) {
	s := newState(t, store.NewMemory())
	today, _ := s.CreateTask(TaskInput{Name: "today", DueDate: "2024-05-01"})
	tomorrow, _ := s.CreateTask(TaskInput{Name: "tomorrow", DueDate: "2024-05-02"})
	saturday, _ := s.CreateTask(TaskInput{Name: "saturday", DueDate: "2024-05-04"})
	undated, _ := s.CreateTask(TaskInput{Name: "undated"})
	_, _ = s.CreateTask(TaskInput{Name: "later", DueDate: "2024-05-20"})

	cases := []struct {
		buckets []dates.Bucket
		want    []string
	}{
		{[]dates.Bucket{dates.Today}, []string{today.ID}},
		{[]dates.Bucket{dates.NoDate}, []string{undated.ID}},
		{[]dates.Bucket{dates.Tomorrow, dates.NoDate}, []string{tomorrow.ID, undated.ID}},
		{[]dates.Bucket{dates.Week}, []string{today.ID, tomorrow.ID, saturday.ID}},
	}
	for _, tc := range cases {
		s.ClearFilters()
		for _, b := range tc.buckets {
			s.ToggleDateFilter(b)
		}
		got := s.FilteredTasks()
		if len(got) != len(tc.want) {
			t.Fatalf("%v: got %d tasks, want %d", tc.buckets, len(got), len(tc.want))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("%v: task %d = %s, want %s", tc.buckets, i, got[i].ID, id)
			}
		}
	}
}

func TestDimensionsAndTogether(t *testing.T) {
	s := newState(t, store.NewMemory())
	want, _ := s.CreateTask(TaskInput{Name: "Report draft", ListID: "id-2", DueDate: "2024-05-01"})
	_, _ = s.CreateTask(TaskInput{Name: "Report final", ListID: "id-2", DueDate: "2024-05-20"})
	_, _ = s.CreateTask(TaskInput{Name: "Report home", ListID: "id-1", DueDate: "2024-05-01"})
	_, _ = s.CreateTask(TaskInput{Name: "Standup", ListID: "id-2", DueDate: "2024-05-01"})

	s.SetKeyword("report")
	s.ToggleDateFilter(dates.Today)
	s.ToggleListFilter("id-2")

	got := s.FilteredTasks()
	if len(got) != 1 || got[0].ID != want.ID {
		t.Fatalf("got %v, want only %s", got, want.ID)
	}
}

func TestFiltersDoNotAffectIncomplete(t *testing.T) {
	s := newState(t, store.NewMemory())
	_, _ = s.CreateTask(TaskInput{Name: "Buy Milk"})
	_, _ = s.CreateTask(TaskInput{Name: "Call mom"})

	s.SetKeyword("milk")
	if len(s.FilteredTasks()) != 1 {
		t.Fatal("keyword filter not applied")
	}
	if len(s.IncompleteTasks()) != 2 {
		t.Fatal("incomplete tasks must ignore filters")
	}
}

func TestToggleFilters(t *testing.T) {
	s := newState(t, store.NewMemory())
	if !s.ToggleDateFilter(dates.Week) || !s.Filters.HasDate(dates.Week) {
		t.Fatal("expected week selected")
	}
	if s.ToggleDateFilter(dates.Week) || s.Filters.HasDate(dates.Week) {
		t.Fatal("expected week deselected")
	}
	if !s.ToggleListFilter("id-1") || !s.Filters.HasList("id-1") {
		t.Fatal("expected list selected")
	}
	if s.ToggleListFilter("id-1") {
		t.Fatal("expected list deselected")
	}
	if !s.Filters.Empty() {
		t.Fatalf("filters = %+v, want empty", s.Filters)
	}
}
