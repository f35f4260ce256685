// Package task defines the task and list records shared by the state store,
// the printers and every host.
package task

import (
	"strings"
	"time"
)

const (
	// UncategorizedID is the reserved list that can never be deleted and
	// receives tasks without a valid list assignment.
	UncategorizedID = "uncategorized"

	// DefaultTaskIcon is used when a task is created without an icon.
	DefaultTaskIcon = "fa-tasks"
	// DefaultListIcon is used when a list is created without an icon.
	DefaultListIcon = "fa-list"

	// CreatedLayout matches the ISO form browsers produce, e.g.
	// 2024-05-01T09:30:00.000Z.
	CreatedLayout = "2006-01-02T15:04:05.000Z07:00"

	layoutISO = "2006-01-02"
)

// Task is a single to-do item. DueDate and DueTime encode as null when unset.
type Task struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	DueDate   *string `json:"dueDate"`
	DueTime   *string `json:"dueTime"`
	ListID    string  `json:"listId"`
	Completed bool    `json:"completed"`
	CreatedAt string  `json:"createdAt"`
}

// HasDueDate reports whether a usable due date is set.
func (t *Task) HasDueDate() bool {
	return t.DueDate != nil && strings.TrimSpace(*t.DueDate) != ""
}

// DateKey returns the ISO date portion of the due date, or "" when there is
// none. Datetime values such as 2024-05-01T10:00:00Z are cut at the T.
func (t *Task) DateKey() string {
	if !t.HasDueDate() {
		return ""
	}
	return DateKey(*t.DueDate)
}

// Due returns the due date as a local calendar date.
func (t *Task) Due() (time.Time, bool) {
	key := t.DateKey()
	if key == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(layoutISO, key, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Created parses CreatedAt, returning the zero time when it is malformed.
func (t *Task) Created() time.Time {
	for _, layout := range []string{CreatedLayout, time.RFC3339Nano} {
		if c, err := time.Parse(layout, t.CreatedAt); err == nil {
			return c
		}
	}
	return time.Time{}
}

// Clone returns a deep copy.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	if t.DueDate != nil {
		v := *t.DueDate
		cp.DueDate = &v
	}
	if t.DueTime != nil {
		v := *t.DueTime
		cp.DueTime = &v
	}
	return &cp
}

// Normalize turns empty optional strings into nil so "" and null mean the
// same thing after a load.
func (t *Task) Normalize() {
	if t.DueDate != nil && strings.TrimSpace(*t.DueDate) == "" {
		t.DueDate = nil
	}
	if t.DueTime != nil && strings.TrimSpace(*t.DueTime) == "" {
		t.DueTime = nil
	}
	if t.Icon == "" {
		t.Icon = DefaultTaskIcon
	}
	if t.ListID == "" {
		t.ListID = UncategorizedID
	}
}

// DateKey cuts an ISO date or datetime down to its date portion.
func DateKey(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.IndexByte(v, 'T'); i >= 0 {
		return v[:i]
	}
	return v
}

// StringPtr returns a pointer to v, or nil for an empty string.
func StringPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// Deref returns the pointed-to string or "".
func Deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
