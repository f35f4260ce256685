// Package key prints the legend of task and list icons.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tasklists/pkg/glyph"
)

// Key prints the icon legend.
type Key struct {
	Out io.Writer
}

// Do renders the task icons, list icons and completion marks.
func (k *Key) Do(ctx context.Context) error {
	w := k.Out
	if w == nil {
		w = color.Output
	}
	_, _ = fmt.Fprintln(w, "")

	k.Key(w, "Task icons", glyph.TaskIcons())
	_, _ = fmt.Fprintln(w, "")
	k.Key(w, "List icons", glyph.ListIcons())
	_, _ = fmt.Fprintln(w, "")
	k.Key(w, "Marks", []glyph.Glyph{
		{Symbol: glyph.Incomplete, Meaning: "open"},
		{Symbol: glyph.Completed, Meaning: "completed"},
		{Symbol: glyph.Unknown, Meaning: "unknown icon"},
	})

	_, _ = fmt.Fprintln(w, "")
	return nil
}

// Key renders one table of glyphs under title.
func (k *Key) Key(w io.Writer, title string, glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(title), bold.Sprint("Icon"), bold.Sprint("Meaning"))
	for _, v := range glyfs {
		tbl.AddRow(v.Symbol, v.Icon, v.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
}
