// Package app is the Bubble Tea terminal UI: tasks grouped by list or by
// date, with filters, completion toggles, a trash view and keyboard driven
// drag-and-drop.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/dnd"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/store"
	"tableflip.dev/tasklists/pkg/task"
	"tableflip.dev/tasklists/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeFilter
	modeGrab
	modeTrash
)

type rowKind int

const (
	rowSection rowKind = iota
	rowTask
)

type row struct {
	kind    rowKind
	section int
	task    *task.Task
}

// Model is the root Bubble Tea model.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc

	keys  keyMap
	help  help.Model
	theme theme.Theme
	input textinput.Model

	mode     mode
	view     state.View
	filters  state.Filters
	sections []state.Section
	rows     []row
	cursor   int
	deleted  []*task.Task
	trashIdx int
	grabbed  *task.Task
	now      time.Time
	// listNames maps list ids to names.
	listNames map[string]string

	// focusTask selects a task after the next refresh.
	focusTask string

	status string
	err    error
	width  int
	height int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New creates the UI model backed by svc.
func New(svc *app.Service) *Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = "› "

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		svc:    svc,
		ctx:    ctx,
		cancel: cancel,
		keys:   defaultKeys(),
		help:   help.New(),
		theme:  theme.Default(),
		input:  ti,
		status: "Press ? for help.",
	}
	m.refresh()
	return m
}

// Init starts watching storage for external changes.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.svc)
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update handles Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-10, 10)
	case watchStartedMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("watch: %w", msg.err))
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
		}
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleWatchEvent(ev store.Event) {
	log.WithFields(log.Fields{"type": ev.Type, "key": ev.Key}).Debug("tui: storage changed")
	if err := m.svc.Reload(); err != nil {
		m.setError(err)
		return
	}
	m.refresh()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) && (msg.String() == "ctrl+c" || (m.mode != modeAdd && m.mode != modeFilter)) {
		m.shutdown()
		return tea.Quit
	}

	switch m.mode {
	case modeAdd, modeFilter:
		return m.handleInputKey(msg)
	case modeGrab:
		m.handleGrabKey(msg)
		return nil
	case modeTrash:
		m.handleTrashKey(msg)
		return nil
	}
	return m.handleNormalKey(msg)
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, false)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, false)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Toggle):
		t := m.selectedTask()
		if t == nil {
			break
		}
		m.mutate(func(st *state.State) (string, error) {
			t, err := st.ToggleTaskCompletion(t.ID)
			if err != nil {
				return "", err
			}
			if t.Completed {
				return fmt.Sprintf("Completed %q", t.Name), nil
			}
			return fmt.Sprintf("Reopened %q", t.Name), nil
		})
	case key.Matches(msg, m.keys.View):
		m.mutate(func(st *state.State) (string, error) {
			st.View = st.View.Toggle()
			return "Grouped by " + st.View.String(), nil
		})
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.Placeholder = "New task"
		m.input.SetValue("")
		return m.input.Focus()
	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		m.input.Placeholder = "Keyword"
		m.input.SetValue(m.filters.Keyword)
		m.input.CursorEnd()
		return m.input.Focus()
	case key.Matches(msg, m.keys.Dates):
		m.mutate(func(st *state.State) (string, error) {
			next := nextDateFilter(st.Filters.Dates)
			st.Filters.Dates = nil
			if next == "" {
				return "Date filter off", nil
			}
			st.ToggleDateFilter(next)
			return "Only " + string(next), nil
		})
	case key.Matches(msg, m.keys.Clear):
		m.mutate(func(st *state.State) (string, error) {
			st.ClearFilters()
			return "Filters cleared", nil
		})
	case key.Matches(msg, m.keys.Grab):
		t := m.selectedTask()
		if t == nil {
			m.setStatus("Select a task to move")
			break
		}
		m.grabbed = t
		m.mode = modeGrab
		m.cursor = m.sectionRow(m.rows[m.cursor].section)
		m.setStatus(fmt.Sprintf("Moving %q: pick a heading and press enter, d for trash, esc to cancel", t.Name))
	case key.Matches(msg, m.keys.Delete):
		t := m.selectedTask()
		if t == nil {
			break
		}
		m.mutate(func(st *state.State) (string, error) {
			if _, err := dnd.Drop(st, t.ID, dnd.TrashTarget{}); err != nil {
				return "", err
			}
			return fmt.Sprintf("Moved %q to the trash", t.Name), nil
		})
	case key.Matches(msg, m.keys.Trash):
		m.mode = modeTrash
		m.trashIdx = 0
		m.setStatus("Trash: r to restore, X to delete forever, esc to go back")
	case key.Matches(msg, m.keys.ListUp):
		m.shiftList(-1)
	case key.Matches(msg, m.keys.ListDown):
		m.shiftList(1)
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input.Blur()
		m.setStatus("Cancelled")
		return nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		current := m.mode
		m.mode = modeNormal
		m.input.Blur()
		m.input.SetValue("")
		if current == modeFilter {
			m.mutate(func(st *state.State) (string, error) {
				st.SetKeyword(value)
				if value == "" {
					return "Keyword cleared", nil
				}
				return fmt.Sprintf("Filtering on %q", value), nil
			})
			return nil
		}
		if value == "" {
			m.setStatus("Nothing added")
			return nil
		}
		target := m.currentTarget()
		m.mutate(func(st *state.State) (string, error) {
			t, err := dnd.NewTaskDrop(st, state.TaskInput{Name: value}, target)
			if err != nil {
				return "", err
			}
			m.focusTask = t.ID
			return fmt.Sprintf("Added %q", t.Name), nil
		})
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleGrabKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, true)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, true)
	case key.Matches(msg, m.keys.Cancel):
		m.endGrab()
		m.setStatus("Move cancelled")
	case key.Matches(msg, m.keys.Drop):
		t := m.grabbed
		target := m.currentTarget()
		m.endGrab()
		m.focusTask = t.ID
		m.mutate(func(st *state.State) (string, error) {
			if _, err := dnd.Drop(st, t.ID, target); err != nil {
				return "", err
			}
			return fmt.Sprintf("Moved %q to %s", t.Name, targetName(st, target, m.now)), nil
		})
	case key.Matches(msg, m.keys.Delete):
		t := m.grabbed
		m.endGrab()
		m.mutate(func(st *state.State) (string, error) {
			if _, err := dnd.Drop(st, t.ID, dnd.TrashTarget{}); err != nil {
				return "", err
			}
			return fmt.Sprintf("Moved %q to the trash", t.Name), nil
		})
	}
}

func (m *Model) handleTrashKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Trash):
		m.mode = modeNormal
		m.setStatus("")
	case key.Matches(msg, m.keys.Up):
		if m.trashIdx > 0 {
			m.trashIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.trashIdx < len(m.deleted)-1 {
			m.trashIdx++
		}
	case key.Matches(msg, m.keys.Restore):
		t := m.selectedDeleted()
		if t == nil {
			break
		}
		m.mutate(func(st *state.State) (string, error) {
			t, err := st.RestoreTask(t.ID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Restored %q to %s", t.Name, st.List(t.ListID).Name), nil
		})
	case key.Matches(msg, m.keys.Purge):
		t := m.selectedDeleted()
		if t == nil {
			break
		}
		m.mutate(func(st *state.State) (string, error) {
			if err := st.PermanentlyDeleteTask(t.ID); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted %q forever", t.Name), nil
		})
	}
	if m.trashIdx >= len(m.deleted) {
		m.trashIdx = max(len(m.deleted)-1, 0)
	}
}

func (m *Model) shiftList(delta int) {
	if m.view != state.ViewList || m.cursor >= len(m.rows) {
		return
	}
	sec := m.sections[m.rows[m.cursor].section]
	m.mutate(func(st *state.State) (string, error) {
		ids := st.ListIDs()
		for i, id := range ids {
			if id != sec.ListID {
				continue
			}
			if i+delta < 0 || i+delta >= len(ids) {
				return "", nil
			}
			if err := dnd.DropList(st, id, i+delta); err != nil {
				return "", err
			}
			return fmt.Sprintf("Moved list %s", sec.Title), nil
		}
		return "", nil
	})
}

// mutate runs fn against the state, reports its message or error and
// refreshes the rows.
func (m *Model) mutate(fn func(st *state.State) (string, error)) {
	keep := m.selectionKey()
	var msg string
	err := m.svc.Do(func(st *state.State) error {
		var err error
		msg, err = fn(st)
		return err
	})
	if err != nil {
		m.setError(err)
	} else if msg != "" {
		m.setStatus(msg)
	}
	m.refresh()
	if m.focusTask != "" {
		keep = "t:" + m.focusTask
		m.focusTask = ""
	}
	m.restoreSelection(keep)
}

func (m *Model) refresh() {
	err := m.svc.Do(func(st *state.State) error {
		m.view = st.View
		m.filters = state.Filters{
			Keyword: st.Filters.Keyword,
			Dates:   append([]dates.Bucket(nil), st.Filters.Dates...),
			Lists:   append([]string(nil), st.Filters.Lists...),
		}
		m.now = st.Now()
		m.listNames = make(map[string]string, len(st.Lists))
		for _, l := range st.Lists {
			m.listNames[l.ID] = l.Name
		}
		m.sections = st.Sections()
		for i := range m.sections {
			m.sections[i].Tasks = cloneTasks(m.sections[i].Tasks)
		}
		m.deleted = cloneTasks(st.DeletedTasks())
		return nil
	})
	if err != nil {
		m.setError(err)
		return
	}

	m.rows = m.rows[:0]
	for i, s := range m.sections {
		m.rows = append(m.rows, row{kind: rowSection, section: i})
		for _, t := range s.Tasks {
			m.rows = append(m.rows, row{kind: rowTask, section: i, task: t})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

func (m *Model) selectionKey() string {
	if m.cursor >= len(m.rows) {
		return ""
	}
	r := m.rows[m.cursor]
	if r.kind == rowTask {
		return "t:" + r.task.ID
	}
	return "s:" + sectionKey(m.sections[r.section])
}

func (m *Model) restoreSelection(keep string) {
	if keep == "" {
		return
	}
	for i, r := range m.rows {
		k := "s:" + sectionKey(m.sections[r.section])
		if r.kind == rowTask {
			k = "t:" + r.task.ID
		}
		if k == keep {
			m.cursor = i
			return
		}
	}
}

func (m *Model) moveCursor(delta int, sectionsOnly bool) {
	for i := m.cursor + delta; i >= 0 && i < len(m.rows); i += delta {
		if !sectionsOnly || m.rows[i].kind == rowSection {
			m.cursor = i
			return
		}
	}
}

func (m *Model) selectedTask() *task.Task {
	if m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].task
}

func (m *Model) selectedDeleted() *task.Task {
	if m.trashIdx >= len(m.deleted) {
		return nil
	}
	return m.deleted[m.trashIdx]
}

func (m *Model) sectionRow(section int) int {
	for i, r := range m.rows {
		if r.kind == rowSection && r.section == section {
			return i
		}
	}
	return 0
}

// currentTarget is the drop target for the section under the cursor.
func (m *Model) currentTarget() dnd.Target {
	if len(m.rows) == 0 {
		return dnd.ListTarget{ListID: task.UncategorizedID}
	}
	s := m.sections[m.rows[m.cursor].section]
	if s.Kind == state.SectionList {
		return dnd.ListTarget{ListID: s.ListID}
	}
	if s.DateKey == dates.NoDateKey {
		return dnd.DateTarget{}
	}
	return dnd.DateTarget{Date: s.DateKey}
}

func (m *Model) endGrab() {
	m.grabbed = nil
	m.mode = modeNormal
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.err = nil
}

func (m *Model) setError(err error) {
	m.err = err
	m.status = ""
	log.WithError(err).Debug("tui: operation failed")
}

func (m *Model) shutdown() {
	m.stopWatch()
	m.cancel()
}

func nextDateFilter(current []dates.Bucket) dates.Bucket {
	order := dates.FilterBuckets()
	if len(current) == 0 {
		return order[0]
	}
	for i, b := range order {
		if b == current[0] && i+1 < len(order) {
			return order[i+1]
		}
	}
	return ""
}

func sectionKey(s state.Section) string {
	if s.Kind == state.SectionList {
		return s.ListID
	}
	return s.DateKey
}

func targetName(st *state.State, t dnd.Target, now time.Time) string {
	switch t := t.(type) {
	case dnd.ListTarget:
		if l := st.List(t.ListID); l != nil {
			return l.Name
		}
	case dnd.DateTarget:
		return dates.Label(t.Date, now)
	}
	return t.String()
}

func cloneTasks(in []*task.Task) []*task.Task {
	out := make([]*task.Task, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}

// Run launches the UI and blocks until it exits or ctx is done.
func Run(ctx context.Context, svc *app.Service) error {
	m := New(svc)
	defer m.shutdown()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
