package app

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/glyph"
	"tableflip.dev/tasklists/pkg/printers"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/task"
)

// View renders the UI.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	var body []string
	selected := 0
	if m.mode == modeTrash {
		body, selected = m.trashLines()
	} else {
		body, selected = m.sectionLines()
	}
	for _, line := range m.window(body, selected) {
		b.WriteString(m.fit(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := strings.Split(m.renderFooter(), "\n")
	for i, line := range footer {
		footer[i] = m.fit(line)
	}
	b.WriteString(strings.Join(footer, "\n"))
	return b.String()
}

func (m *Model) renderHeader() string {
	title := "Tasks by " + m.view.String()
	if m.mode == modeTrash {
		title = fmt.Sprintf("Trash (%d)", len(m.deleted))
	}
	out := m.theme.Header.Title.Render(title)
	if f := m.filterSummary(); f != "" {
		out += "  " + m.theme.Header.Filter.Render(f)
	}
	return out
}

func (m *Model) filterSummary() string {
	var parts []string
	if m.filters.Keyword != "" {
		parts = append(parts, fmt.Sprintf("%q", m.filters.Keyword))
	}
	for _, b := range m.filters.Dates {
		parts = append(parts, "#"+string(b))
	}
	if len(parts) == 0 {
		return ""
	}
	return "filter: " + strings.Join(parts, " ")
}

func (m *Model) sectionLines() ([]string, int) {
	if len(m.rows) == 0 {
		return []string{m.theme.Footer.Status.Render("Nothing to show.")}, 0
	}
	lines := make([]string, 0, len(m.rows))
	selected := 0
	for i, r := range m.rows {
		if i == m.cursor {
			selected = len(lines)
		}
		if r.kind == rowSection {
			if i > 0 {
				lines = append(lines, "")
				if i <= m.cursor {
					selected++
				}
			}
			lines = append(lines, m.renderSection(m.sections[r.section], i == m.cursor))
			continue
		}
		lines = append(lines, m.renderTask(r.task, i == m.cursor))
	}
	return lines, selected
}

func (m *Model) renderSection(s state.Section, selected bool) string {
	title := fmt.Sprintf("%s %s", glyph.Symbol(s.Icon), s.Title)
	count := m.theme.Section.Count.Render(fmt.Sprintf(" (%d)", len(s.Tasks)))
	switch {
	case selected && m.mode == modeGrab:
		return m.theme.Section.Drop.Render("» "+title) + count
	case selected:
		return m.theme.Section.Selected.Render(title) + count
	}
	return m.theme.Section.Title.Render(title) + count
}

func (m *Model) renderTask(t *task.Task, selected bool) string {
	mark := glyph.Incomplete
	if t.Completed {
		mark = glyph.Completed
	}
	text := fmt.Sprintf("%s %s %s", mark, glyph.Symbol(t.Icon), t.Name)

	style := m.theme.Task.Normal
	switch {
	case m.grabbed != nil && m.grabbed.ID == t.ID:
		style = m.theme.Task.Grabbed
	case selected:
		style = m.theme.Task.Selected
	case t.Completed:
		style = m.theme.Task.Completed
	}

	prefix := "  "
	if selected && m.mode == modeNormal {
		prefix = "> "
	}
	line := prefix + style.Render(text)

	if due := printers.DueString(t, m.now); due != "" {
		dueStyle := m.theme.Task.Due
		if m.overdue(t) {
			dueStyle = m.theme.Task.Overdue
		}
		line += "  " + dueStyle.Render(due)
	}
	if m.view == state.ViewDate {
		line += "  " + m.theme.Task.ID.Render(m.listName(t.ListID))
	}
	return line
}

func (m *Model) trashLines() ([]string, int) {
	if len(m.deleted) == 0 {
		return []string{m.theme.Footer.Status.Render("The trash is empty.")}, 0
	}
	lines := make([]string, 0, len(m.deleted))
	for i, t := range m.deleted {
		style := m.theme.Task.Completed
		prefix := "  "
		if i == m.trashIdx {
			style = m.theme.Task.Selected
			prefix = "> "
		}
		line := prefix + style.Render(fmt.Sprintf("%s %s", glyph.Symbol(t.Icon), t.Name))
		line += "  " + m.theme.Task.ID.Render(m.listName(t.ListID))
		lines = append(lines, line)
	}
	return lines, m.trashIdx
}

func (m *Model) renderFooter() string {
	var lines []string
	switch m.mode {
	case modeAdd:
		lines = append(lines, m.theme.Footer.Input.Render("Add to "+m.targetTitle()+": ")+m.input.View())
	case modeFilter:
		lines = append(lines, m.theme.Footer.Input.Render("Keyword: ")+m.input.View())
	}
	if m.err != nil {
		lines = append(lines, m.theme.Footer.Error.Render("Error: "+m.err.Error()))
	} else if m.status != "" {
		lines = append(lines, m.theme.Footer.Status.Render(m.status))
	}
	lines = append(lines, m.theme.Footer.Help.Render(m.help.View(m.keys)))
	return strings.Join(lines, "\n")
}

func (m *Model) targetTitle() string {
	if m.cursor >= len(m.rows) {
		return "Uncategorized"
	}
	return m.sections[m.rows[m.cursor].section].Title
}

func (m *Model) listName(id string) string {
	if name, ok := m.listNames[id]; ok {
		return name
	}
	return id
}

func (m *Model) overdue(t *task.Task) bool {
	if t.Completed {
		return false
	}
	d, ok := t.Due()
	return ok && d.Before(dates.Day(m.now))
}

// window keeps the selected line visible when the body is taller than the
// terminal.
func (m *Model) window(lines []string, selected int) []string {
	if m.height <= 0 {
		return lines
	}
	avail := m.height - 6
	if m.help.ShowAll {
		avail -= 4
	}
	if avail < 3 || len(lines) <= avail {
		return lines
	}
	start := selected - avail/2
	if start < 0 {
		start = 0
	}
	if start+avail > len(lines) {
		start = len(lines) - avail
	}
	return lines[start : start+avail]
}

func (m *Model) fit(line string) string {
	if m.width <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(m.width), "…")
}
