package store

import (
	"context"
	"testing"
	"time"
)

func TestPersistenceWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(&Config{Path: base, Backend: BackendDiskv})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Write(KeyTasks, []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventKeyChanged {
				if evt.Key != KeyTasks {
					t.Fatalf("expected key %q, got %q", KeyTasks, evt.Key)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestMemoryWatchClosesWithContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := m.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := m.Write(KeyLists, []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	evt := <-ch
	if evt.Type != EventKeyChanged || evt.Key != KeyLists {
		t.Fatalf("unexpected event %+v", evt)
	}
	cancel()
	for range ch {
	}
}

func TestThrottleCoalescesBursts(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)
	defer th.Stop()

	got := make(chan Event, 16)
	send := func(ev Event) { got <- ev }
	for i := 0; i < 5; i++ {
		th.Enqueue(Event{Type: EventKeyChanged, Key: KeyTasks}, send)
	}
	select {
	case ev := <-got:
		if ev.Key != KeyTasks {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for flush")
	}
	select {
	case ev := <-got:
		t.Fatalf("expected a single event, also got %+v", ev)
	case <-time.After(60 * time.Millisecond):
	}
}
