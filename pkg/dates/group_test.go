package dates

import (
	"testing"

	"tableflip.dev/tasklists/pkg/task"
)

func dueTask(id, due string) *task.Task {
	return &task.Task{ID: id, DueDate: task.StringPtr(due)}
}

func TestGroupByDateOrdersChronologicallyWithNoDateLast(t *testing.T) {
	today := Key(wednesday)
	tomorrow := Key(Day(wednesday).AddDate(0, 0, 1))
	later := Key(Day(wednesday).AddDate(0, 0, 10))

	tasks := []*task.Task{
		dueTask("later", later),
		dueTask("none", ""),
		dueTask("tomorrow", tomorrow),
		dueTask("today", today),
	}
	groups := GroupByDate(tasks)
	want := []string{today, tomorrow, later, NoDateKey}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(groups))
	}
	for i, g := range groups {
		if g.Key != want[i] {
			t.Fatalf("group %d: expected %s, got %s", i, want[i], g.Key)
		}
		if len(g.Tasks) != 1 {
			t.Fatalf("group %s: expected one task, got %d", g.Key, len(g.Tasks))
		}
	}
}

func TestGroupByDateAlwaysHasNoDateGroup(t *testing.T) {
	groups := GroupByDate([]*task.Task{dueTask("a", "2024-05-01")})
	last := groups[len(groups)-1]
	if !last.NoDate() {
		t.Fatalf("expected no-date group last, got %s", last.Key)
	}
	if len(last.Tasks) != 0 {
		t.Fatalf("expected empty no-date group, got %d", len(last.Tasks))
	}

	groups = GroupByDate(nil)
	if len(groups) != 1 || !groups[0].NoDate() {
		t.Fatalf("expected only the no-date group, got %+v", groups)
	}
}

func TestGroupByDateMergesDatetimesAndKeepsInputOrder(t *testing.T) {
	groups := GroupByDate([]*task.Task{
		dueTask("b", "2024-05-03T10:00:00Z"),
		dueTask("a", "2024-05-03"),
		dueTask("c", "not a date"),
	})
	if groups[0].Key != "2024-05-03" {
		t.Fatalf("expected 2024-05-03 first, got %s", groups[0].Key)
	}
	if groups[0].Tasks[0].ID != "b" || groups[0].Tasks[1].ID != "a" {
		t.Fatalf("expected input order b,a")
	}
	if groups[1].Key != "not a date" {
		t.Fatalf("expected unparsable key after dates, got %s", groups[1].Key)
	}
	if !groups[2].NoDate() {
		t.Fatalf("expected no-date last")
	}
}
