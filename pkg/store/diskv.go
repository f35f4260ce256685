package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	log "github.com/sirupsen/logrus"
)

// tempDirName holds in-flight writes; diskv renames them into place.
const tempDirName = ".tmp"

// openDiskv stores every key as a file directly under basePath. Writes go
// through a temp file so readers never see a truncated value.
func openDiskv(basePath string) (Persistence, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &diskvPersistence{
		d: diskv.New(diskv.Options{
			BasePath:         basePath,
			TempDir:          filepath.Join(basePath, tempDirName),
			Transform:        flatTransform,
			InverseTransform: flatInverseTransform,
		}),
		basePath: basePath,
	}, nil
}

type diskvPersistence struct {
	d        *diskv.Diskv
	basePath string
}

func flatTransform(string) []string {
	return []string{}
}

// flatInverseTransform keeps nested files (the temp dir) out of Keys by
// giving them dot-prefixed names.
func flatInverseTransform(pk *diskv.PathKey) string {
	if len(pk.Path) == 0 {
		return pk.FileName
	}
	return strings.Join(append(append([]string{}, pk.Path...), pk.FileName), "/")
}

func (p *diskvPersistence) Read(key string) ([]byte, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *diskvPersistence) Write(key string, value []byte) error {
	if err := p.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *diskvPersistence) Erase(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *diskvPersistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, ".") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (p *diskvPersistence) Watch(ctx context.Context) (<-chan Event, error) {
	return watchDir(ctx, p.basePath, func(name string) Event {
		if strings.HasPrefix(name, ".") {
			return Event{}
		}
		return Event{Type: EventKeyChanged, Key: name}
	})
}

func (p *diskvPersistence) Location() string {
	return p.basePath
}

func (p *diskvPersistence) Close() error {
	log.WithField("path", p.basePath).Debug("store: closing diskv")
	return nil
}
