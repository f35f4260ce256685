package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tasklists/pkg/dates"
	"tableflip.dev/tasklists/pkg/glyph"
	"tableflip.dev/tasklists/pkg/state"
	"tableflip.dev/tasklists/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
	// Now anchors due labels; zero means time.Now.
	Now time.Time
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("c2b6a4f0-2d3a-4b8e-9a55-3f1e6d7c8b90  "))
)

// Writer is where the printer writes.
func (pp *PrettyPrint) Writer() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now.IsZero() {
		return time.Now()
	}
	return pp.Now
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Writer(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.Writer(), spacing)
	}
	_, _ = t.Fprintln(pp.Writer(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.Writer(), spacing)
	}
	_, _ = t.Fprint(pp.Writer(), title)
	_, _ = c.Fprintf(pp.Writer(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Writer(), " task")
	default:
		_, _ = c.Fprintln(pp.Writer(), " tasks")
	}
}

// Tasks prints one line per task: completion mark, icon, name and due.
func (pp *PrettyPrint) Tasks(tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.Writer(), spacing)
		}
		_, _ = f.Fprint(pp.Writer(), " none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.Faint, color.CrossedOut)
	due := color.New(color.FgCyan)
	overdue := color.New(color.FgRed)

	now := pp.now()
	for _, e := range tasks {
		if pp.ShowID {
			_, _ = y.Fprint(pp.Writer(), e.ID)
			pad := len(spacing) - len(e.ID)
			if pad < 1 {
				pad = 1
			}
			_, _ = y.Fprint(pp.Writer(), strings.Repeat(" ", pad))
		}
		mark := glyph.Incomplete
		name := e.Name
		if e.Completed {
			mark = glyph.Completed
			name = done.Sprint(name)
		}
		_, _ = t.Fprintf(pp.Writer(), "%s %s %s", mark, glyph.Symbol(e.Icon), name)
		if when := DueString(e, now); when != "" {
			c := due
			if d, ok := e.Due(); ok && !e.Completed && d.Before(dates.Day(now)) {
				c = overdue
			}
			_, _ = c.Fprintf(pp.Writer(), "  %s", when)
		}
		_, _ = t.Fprintln(pp.Writer(), "")
	}
	_, _ = t.Fprintln(pp.Writer(), "")
}

// Sections prints each section heading followed by its tasks.
func (pp *PrettyPrint) Sections(sections []state.Section) {
	for _, s := range sections {
		title := s.Title
		if s.Kind == state.SectionList {
			title = glyph.Symbol(s.Icon) + " " + title
		}
		pp.TitleWithCount(title, len(s.Tasks))
		pp.Tasks(s.Tasks...)
	}
}

// Lists prints the lists as a table with their task counts.
func (pp *PrettyPrint) Lists(lists []*task.List, count func(id string) int) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), "", bold.Sprint("List"), bold.Sprint("Tasks"))
	} else {
		tbl.AddRow("", bold.Sprint("List"), bold.Sprint("Tasks"))
	}
	for _, l := range lists {
		n := 0
		if count != nil {
			n = count(l.ID)
		}
		if pp.ShowID {
			tbl.AddRow(l.ID, glyph.Symbol(l.Icon), l.Name, n)
		} else {
			tbl.AddRow(glyph.Symbol(l.Icon), l.Name, n)
		}
	}
	_, _ = fmt.Fprintln(pp.Writer(), tbl)
}

// JSON prints v indented.
func (pp *PrettyPrint) JSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.Writer(), string(b))
	return err
}

// DueString renders a task's due date and time, e.g. "Tomorrow 9:00 AM".
func DueString(t *task.Task, now time.Time) string {
	parts := make([]string, 0, 2)
	if key := t.DateKey(); key != "" {
		parts = append(parts, dates.Label(key, now))
	}
	if t.DueTime != nil && *t.DueTime != "" {
		parts = append(parts, dates.FormatTime(*t.DueTime))
	}
	return strings.Join(parts, " ")
}
