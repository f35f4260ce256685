package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/store"
)

func TestInfo(t *testing.T) {
	cfg := store.DefaultConfig()
	cfg.Path = t.TempDir()
	svc, err := app.Open(cfg)
	if err != nil {
		t.Fatalf("app.Open() = %v", err)
	}
	defer svc.Close()

	var buf bytes.Buffer
	i := Info{Config: cfg, Service: svc, Out: &buf}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	out := buf.String()
	for _, want := range []string{cfg.Path, "diskv", "0 open", store.KeyLists, store.KeyDeletedTasks} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
