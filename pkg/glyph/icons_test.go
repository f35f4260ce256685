package glyph

import "testing"

func TestLookup(t *testing.T) {
	for _, icon := range []string{"fa-tasks", "tasks", " FA-TASKS "} {
		g, ok := Lookup(icon)
		if !ok || g.Symbol != "●" {
			t.Fatalf("Lookup(%q) = %v, %v", icon, g, ok)
		}
	}
	if got := Symbol("fa-rocket"); got != Unknown {
		t.Fatalf("Symbol(unknown) = %q, want %q", got, Unknown)
	}
}

func TestIconSets(t *testing.T) {
	for _, g := range TaskIcons() {
		if g.List {
			t.Fatalf("%s is a list icon", g.Icon)
		}
	}
	lists := ListIcons()
	if len(lists) == 0 || lists[0].Icon != "fa-list" {
		t.Fatalf("expected fa-list first, got %v", lists)
	}
}
