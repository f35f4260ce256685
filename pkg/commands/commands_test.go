package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/tasklists/pkg/runner/get"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/store"
)

func setupEnv(t *testing.T) {
	t.Helper()
	color.NoColor = true
	t.Setenv("TASKLISTS_CONFIG_PATH", t.TempDir())
	t.Setenv("TASKLISTS_PATH", t.TempDir())
	t.Setenv("TASKLISTS_BACKEND", store.BackendDiskv)
	t.Setenv("TASKLISTS_LOG_LEVEL", "error")
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd := New()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	want := []string{"add", "get", "edit", "complete", "move", "delete", "restore", "purge",
		"trash", "lists", "key", "info", "config", "version", "ui", "mcp", "completion"}
	for _, name := range want {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Fatalf("missing command %q", name)
		}
	}
	for _, name := range []string{"get", "add", "rename", "delete", "reorder"} {
		if found, _, err := cmd.Find([]string{"lists", name}); err != nil || found.Name() != name {
			t.Fatalf("missing command lists %q", name)
		}
	}
}

func TestAddThenGet(t *testing.T) {
	setupEnv(t)

	out := run(t, "add", "buy", "milk", "--list", "shopping", "--due", "2024-05-01")
	if !strings.Contains(out, "Shopping") || !strings.Contains(out, "buy milk") {
		t.Fatalf("unexpected add output:\n%s", out)
	}

	out = run(t, "get", "--json", "--list", "Shopping")
	var sections []get.JSONSection
	if err := json.Unmarshal([]byte(out), &sections); err != nil {
		t.Fatalf("get --json is not JSON: %v\n%s", err, out)
	}
	if len(sections) != 1 || len(sections[0].Tasks) != 1 || sections[0].Tasks[0].Name != "buy milk" {
		t.Fatalf("unexpected sections: %+v", sections)
	}
}

func TestListsAddAndGet(t *testing.T) {
	setupEnv(t)

	run(t, "lists", "add", "Errands")
	out := run(t, "lists")
	if !strings.Contains(out, "Errands") {
		t.Fatalf("new list missing:\n%s", out)
	}
}

func TestMatchingLists(t *testing.T) {
	st, err := state.Open(store.NewMemory())
	if err != nil {
		t.Fatalf("state.Open() = %v", err)
	}
	got := matchingLists(st, "s")
	if len(got) != 1 || got[0] != "Shopping" {
		t.Fatalf("matchingLists = %v", got)
	}
	if got := matchingLists(st, ""); len(got) != len(st.Lists) {
		t.Fatalf("empty prefix matched %d lists", len(got))
	}
}

func TestConfigureLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	configureLogging("error", false)
	if log.GetLevel() != log.ErrorLevel {
		t.Fatalf("level = %v, want error", log.GetLevel())
	}
	configureLogging("bogus", false)
	if log.GetLevel() != log.WarnLevel {
		t.Fatalf("level = %v, want warn", log.GetLevel())
	}
	configureLogging("error", true)
	if log.GetLevel() != log.DebugLevel {
		t.Fatalf("level = %v, want debug", log.GetLevel())
	}
}
