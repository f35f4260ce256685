package task

import (
	"encoding/json"
	"testing"
)

func TestTaskEncodesMissingDatesAsNull(t *testing.T) {
	tk := &Task{ID: "a", Name: "Report", Icon: DefaultTaskIcon, ListID: UncategorizedID, CreatedAt: "2024-05-01T09:30:00.000Z"}
	b, err := json.Marshal(tk)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"a","name":"Report","icon":"fa-tasks","dueDate":null,"dueTime":null,"listId":"uncategorized","completed":false,"createdAt":"2024-05-01T09:30:00.000Z"}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}

func TestDateKeyCutsDatetime(t *testing.T) {
	cases := map[string]string{
		"2024-05-01":           "2024-05-01",
		"2024-05-01T10:00:00Z": "2024-05-01",
		" 2024-05-01 ":         "2024-05-01",
	}
	for in, want := range cases {
		if got := DateKey(in); got != want {
			t.Fatalf("DateKey(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestNormalizeClearsEmptyOptionals(t *testing.T) {
	empty := ""
	tk := &Task{ID: "a", DueDate: &empty, DueTime: &empty}
	tk.Normalize()
	if tk.DueDate != nil || tk.DueTime != nil {
		t.Fatalf("expected optionals cleared, got %v %v", tk.DueDate, tk.DueTime)
	}
	if tk.Icon != DefaultTaskIcon {
		t.Fatalf("expected default icon, got %q", tk.Icon)
	}
	if tk.ListID != UncategorizedID {
		t.Fatalf("expected uncategorized list, got %q", tk.ListID)
	}
	if tk.HasDueDate() {
		t.Fatal("expected no due date")
	}
}

func TestCloneIsDeep(t *testing.T) {
	tk := &Task{ID: "a", DueDate: StringPtr("2024-05-01")}
	cp := tk.Clone()
	*cp.DueDate = "2024-06-01"
	if *tk.DueDate != "2024-05-01" {
		t.Fatalf("clone shares due date storage: %s", *tk.DueDate)
	}
}

func TestCreatedParsesBrowserTimestamps(t *testing.T) {
	tk := &Task{CreatedAt: "2024-05-01T09:30:00.000Z"}
	if c := tk.Created(); c.IsZero() || c.Hour() != 9 {
		t.Fatalf("unexpected created time %v", c)
	}
	tk.CreatedAt = "garbage"
	if !tk.Created().IsZero() {
		t.Fatal("expected zero time for garbage")
	}
}
