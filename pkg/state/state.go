// Package state owns the task manager's collections: lists, active tasks,
// deleted tasks, the current filters and the session view. Every mutating
// operation persists all three collections before returning unless the
// State was built WithManualSave.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/tasklists/pkg/store"
	"tableflip.dev/tasklists/pkg/task"
)

var (
	ErrNotFound     = errors.New("state: not found")
	ErrInvalidName  = errors.New("state: list name is required")
	ErrReserved     = errors.New("state: the uncategorized list cannot be deleted")
	ErrInvalidOrder = errors.New("state: list order must name every list exactly once")
	ErrUnknownList  = errors.New("state: unknown list")
	ErrDuplicateID  = errors.New("state: list id already in use")
)

// State is the single source of truth for one user's data. It is not safe
// for concurrent use; hosts serialize access on their own goroutine.
type State struct {
	Lists   []*task.List
	Tasks   []*task.Task
	Deleted []*task.Task

	// Filters and View live for the session only.
	Filters Filters
	View    View

	p        store.Persistence
	now      func() time.Time
	newID    func() string
	autosave bool
	loaded   bool
}

// Option configures a State.
type Option func(*State)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

// WithIDs replaces the id generator.
func WithIDs(newID func() string) Option {
	return func(s *State) {
		s.newID = newID
	}
}

// WithManualSave stops mutations from persisting; the caller invokes Save.
func WithManualSave() Option {
	return func(s *State) {
		s.autosave = false
	}
}

// New returns an empty State bound to p. Call Initialize before use.
func New(p store.Persistence, opts ...Option) *State {
	s := &State{
		p:        p,
		now:      time.Now,
		newID:    uuid.NewString,
		autosave: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open builds a State and initializes it from p.
func Open(p store.Persistence, opts ...Option) (*State, error) {
	s := New(p, opts...)
	if err := s.Initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Now returns the State's notion of the current time.
func (s *State) Now() time.Time {
	return s.now()
}

// Persistence returns the backing store.
func (s *State) Persistence() store.Persistence {
	return s.p
}

type malformedError struct {
	key string
	err error
}

func (e *malformedError) Error() string {
	return fmt.Sprintf("state: malformed %s: %v", e.key, e.err)
}

func (e *malformedError) Unwrap() error {
	return e.err
}

// Initialize loads the three collections. Missing lists are seeded with the
// defaults; malformed data resets everything to the defaults. Either way the
// result is persisted. The uncategorized list is always present afterwards.
func (s *State) Initialize() error {
	return s.load(false)
}

// load reads the collections. With keep set, malformed or missing lists
// leave the current collections in place instead of reseeding.
func (s *State) load(keep bool) error {
	if s.p == nil {
		return errors.New("state: no persistence configured")
	}

	var lists []*task.List
	var tasks, deleted []*task.Task
	listsFound, err := s.read(store.KeyLists, &lists)
	if err == nil {
		_, err = s.read(store.KeyTasks, &tasks)
	}
	if err == nil {
		_, err = s.read(store.KeyDeletedTasks, &deleted)
	}

	var malformed *malformedError
	switch {
	case errors.As(err, &malformed):
		if keep {
			log.WithError(malformed.err).WithField("key", malformed.key).Warn("state: stored data is malformed, keeping loaded state")
			return nil
		}
		log.WithError(malformed.err).WithField("key", malformed.key).Warn("state: stored data is malformed, resetting to defaults")
		s.loaded = true
		s.Lists = s.seedLists()
		s.Tasks = nil
		s.Deleted = nil
		return s.Save()
	case err != nil:
		return err
	}

	lists = compactLists(lists)
	seeded := false
	if !listsFound || len(lists) == 0 {
		if keep {
			log.WithField("key", store.KeyLists).Warn("state: stored lists are missing, keeping loaded state")
			return nil
		}
		lists = s.seedLists()
		seeded = true
	} else if !containsList(lists, task.UncategorizedID) {
		lists = append(lists, task.Uncategorized())
	}

	s.loaded = true
	s.Lists = lists
	s.Tasks = compactTasks(tasks)
	s.Deleted = compactTasks(deleted)

	for _, t := range s.Tasks {
		if s.List(t.ListID) == nil {
			log.WithFields(log.Fields{
				"task": t.ID,
				"list": t.ListID,
			}).Warn("state: task references a missing list, moving it to uncategorized")
			t.ListID = task.UncategorizedID
		}
	}

	if seeded {
		return s.Save()
	}
	return nil
}

// Reload discards in-memory collections and reads them again. Filters and
// View are kept. Once loaded, a malformed or empty store is ignored rather
// than reseeded, since it is usually a write caught halfway.
func (s *State) Reload() error {
	return s.load(s.loaded)
}

// Save writes lists, tasks and deleted tasks as JSON arrays.
func (s *State) Save() error {
	if s.p == nil {
		return errors.New("state: no persistence configured")
	}
	if err := s.write(store.KeyLists, orEmptyLists(s.Lists)); err != nil {
		return err
	}
	if err := s.write(store.KeyTasks, orEmptyTasks(s.Tasks)); err != nil {
		return err
	}
	return s.write(store.KeyDeletedTasks, orEmptyTasks(s.Deleted))
}

func (s *State) commit() error {
	if !s.autosave {
		return nil
	}
	return s.Save()
}

func (s *State) read(key string, into interface{}) (bool, error) {
	data, err := s.p.Read(key)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("state: load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, into); err != nil {
		return true, &malformedError{key: key, err: err}
	}
	return true, nil
}

func (s *State) write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("state: encode %s: %w", key, err)
	}
	if err := s.p.Write(key, data); err != nil {
		return fmt.Errorf("state: save %s: %w", key, err)
	}
	return nil
}

func (s *State) seedLists() []*task.List {
	return []*task.List{
		{ID: s.newID(), Name: "Personal", Icon: "fa-user"},
		{ID: s.newID(), Name: "Work", Icon: "fa-briefcase"},
		{ID: s.newID(), Name: "Shopping", Icon: "fa-shopping-cart"},
		task.Uncategorized(),
	}
}

func compactLists(in []*task.List) []*task.List {
	out := make([]*task.List, 0, len(in))
	for _, l := range in {
		if l == nil || l.ID == "" {
			continue
		}
		if l.Icon == "" {
			l.Icon = task.DefaultListIcon
		}
		out = append(out, l)
	}
	return out
}

func compactTasks(in []*task.Task) []*task.Task {
	out := make([]*task.Task, 0, len(in))
	for _, t := range in {
		if t == nil || t.ID == "" {
			continue
		}
		t.Normalize()
		out = append(out, t)
	}
	return out
}

func containsList(lists []*task.List, id string) bool {
	for _, l := range lists {
		if l.ID == id {
			return true
		}
	}
	return false
}

func orEmptyLists(l []*task.List) []*task.List {
	if l == nil {
		return []*task.List{}
	}
	return l
}

func orEmptyTasks(t []*task.Task) []*task.Task {
	if t == nil {
		return []*task.Task{}
	}
	return t
}
