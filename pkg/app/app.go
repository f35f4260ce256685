// Package app opens the configured store and serializes access to the task
// state for hosts that call it from more than one goroutine.
package app

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/store"
)

var ErrClosed = errors.New("app: service is closed")

// Service guards a State with a mutex.
type Service struct {
	mu     sync.Mutex
	st     *state.State
	closed bool
}

// Open loads the store described by cfg (LoadConfig when nil) and
// initializes the state from it. The configured view becomes the session
// default.
func Open(cfg *store.Config, opts ...state.Option) (*Service, error) {
	if cfg == nil {
		var err error
		if cfg, err = store.LoadConfig(); err != nil {
			return nil, err
		}
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	st, err := state.Open(p, opts...)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	if v, err := state.ParseView(cfg.View); err == nil {
		st.View = v
	} else {
		log.WithError(err).Warn("app: ignoring configured view")
	}
	log.WithFields(log.Fields{
		"backend":  cfg.Backend,
		"location": p.Location(),
		"lists":    len(st.Lists),
		"tasks":    len(st.Tasks),
	}).Debug("app: state loaded")
	return New(st), nil
}

// New wraps an initialized state.
func New(st *state.State) *Service {
	return &Service{st: st}
}

// Do re-reads the store and runs fn with exclusive access to the state.
// Other processes may have written since the last call; saving from a stale
// copy would drop their changes.
func (s *Service) Do(fn func(*state.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := s.st.Reload(); err != nil {
		return err
	}
	return fn(s.st)
}

// Reload re-reads the state from storage, keeping filters and view.
func (s *Service) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.st.Reload()
}

// Watch subscribes to storage change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.st.Persistence().Watch(ctx)
}

// Location reports where the state is stored.
func (s *Service) Location() string {
	return s.st.Persistence().Location()
}

// Close releases the store. Later calls to Do fail with ErrClosed.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.st.Persistence().Close()
}

// Keys lists the stored keys.
func (s *Service) Keys(ctx context.Context) []string {
	return s.st.Persistence().Keys(ctx)
}
