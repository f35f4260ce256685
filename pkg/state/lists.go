package state

import (
	"fmt"
	"strings"

	"tableflip.dev/tasklists/pkg/task"
)

// ListPatch holds the fields to change on a list; nil fields are left
// untouched.
type ListPatch struct {
	ID   *string
	Name *string
	Icon *string
}

// CreateList appends a list. The name is trimmed and must not be empty.
func (s *State) CreateList(name, icon string) (*task.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if icon == "" {
		icon = task.DefaultListIcon
	}
	l := &task.List{ID: s.newID(), Name: name, Icon: icon}
	s.Lists = append(s.Lists, l)
	return l, s.commit()
}

// UpdateList merges patch into the list with id. The uncategorized list
// keeps its id whatever the patch says. Renaming another list's id moves its
// active and deleted tasks along with it.
func (s *State) UpdateList(id string, patch ListPatch) (*task.List, error) {
	l := s.List(id)
	if l == nil {
		return nil, fmt.Errorf("%w: list %q", ErrNotFound, id)
	}
	if l.Reserved() {
		patch.ID = nil
	}

	var name string
	if patch.Name != nil {
		name = strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ErrInvalidName
		}
	}
	var newID string
	if patch.ID != nil && *patch.ID != id {
		newID = strings.TrimSpace(*patch.ID)
		if newID == "" {
			return nil, fmt.Errorf("%w: empty id", ErrInvalidName)
		}
		if s.List(newID) != nil {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, newID)
		}
	}

	if patch.Name != nil {
		l.Name = name
	}
	if patch.Icon != nil {
		l.Icon = *patch.Icon
		if l.Icon == "" {
			l.Icon = task.DefaultListIcon
		}
	}
	if newID != "" {
		for _, t := range s.Tasks {
			if t.ListID == id {
				t.ListID = newID
			}
		}
		for _, t := range s.Deleted {
			if t.ListID == id {
				t.ListID = newID
			}
		}
		l.ID = newID
	}
	return l, s.commit()
}

// DeleteList removes a list and reassigns its tasks to uncategorized. The
// uncategorized list itself is refused with ErrReserved.
func (s *State) DeleteList(id string) error {
	if id == task.UncategorizedID {
		return ErrReserved
	}
	i := s.indexOfList(id)
	if i < 0 {
		return fmt.Errorf("%w: list %q", ErrNotFound, id)
	}
	for _, t := range s.Tasks {
		if t.ListID == id {
			t.ListID = task.UncategorizedID
		}
	}
	s.Lists = append(s.Lists[:i], s.Lists[i+1:]...)
	return s.commit()
}

// ReorderLists replaces the list order. ids must be a permutation of the
// current list ids; anything else returns ErrInvalidOrder and changes
// nothing.
func (s *State) ReorderLists(ids []string) error {
	if len(ids) != len(s.Lists) {
		return fmt.Errorf("%w: got %d ids for %d lists", ErrInvalidOrder, len(ids), len(s.Lists))
	}
	seen := make(map[string]struct{}, len(ids))
	ordered := make([]*task.List, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q repeated", ErrInvalidOrder, id)
		}
		seen[id] = struct{}{}
		l := s.List(id)
		if l == nil {
			return fmt.Errorf("%w: unknown list %q", ErrInvalidOrder, id)
		}
		ordered = append(ordered, l)
	}
	s.Lists = ordered
	return s.commit()
}

// List returns the list with id, or nil.
func (s *State) List(id string) *task.List {
	if i := s.indexOfList(id); i >= 0 {
		return s.Lists[i]
	}
	return nil
}

// ResolveList finds a list by id, then by case-insensitive name.
func (s *State) ResolveList(ref string) *task.List {
	if l := s.List(ref); l != nil {
		return l
	}
	ref = strings.TrimSpace(ref)
	for _, l := range s.Lists {
		if strings.EqualFold(l.Name, ref) {
			return l
		}
	}
	return nil
}

// ListIDs returns the ids of all lists in display order.
func (s *State) ListIDs() []string {
	ids := make([]string, len(s.Lists))
	for i, l := range s.Lists {
		ids[i] = l.ID
	}
	return ids
}

// TaskCount returns how many active tasks are filed under listID.
func (s *State) TaskCount(listID string) int {
	n := 0
	for _, t := range s.Tasks {
		if t.ListID == listID {
			n++
		}
	}
	return n
}

func (s *State) indexOfList(id string) int {
	for i, l := range s.Lists {
		if l.ID == id {
			return i
		}
	}
	return -1
}
