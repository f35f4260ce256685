// Package store persists the task manager's collections in a local key/value
// store. Each collection is one key holding a JSON document.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Keys holding the three persisted collections.
const (
	KeyLists        = "lists"
	KeyTasks        = "tasks"
	KeyDeletedTasks = "deletedTasks"
)

// ErrNotFound is returned by Read when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Persistence is a small synchronous key/value contract.
type Persistence interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Erase(key string) error
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
	// Location describes where data lives, for diagnostics.
	Location() string
	Close() error
}

// Load opens the backend named by cfg. A nil cfg is read with LoadConfig.
func Load(cfg *Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend {
	case "", BackendDiskv:
		return openDiskv(cfg.BasePath())
	case BackendSQLite:
		return openSQLite(cfg.BasePath())
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("store: unknown backend %q (expected %s, %s or %s)", cfg.Backend, BackendDiskv, BackendSQLite, BackendMemory)
}
