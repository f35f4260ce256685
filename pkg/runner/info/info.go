// Package info prints where tasks are stored and how many there are.
package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/store"
)

type Info struct {
	Config  *store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}

	if override := os.Getenv("TASKLISTS_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "TASKLISTS_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "TASKLISTS_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(w, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(w, "Config.backend:", n.Config.Backend)

	if n.Service == nil {
		return fmt.Errorf("failed to open the task store")
	}
	_, _ = fmt.Fprintln(w, "Location:", n.Service.Location())

	sum, err := n.Service.Summary()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Tasks: %d open, %d completed, %d in trash\n", sum.Incomplete, sum.Completed, sum.Deleted)
	_, _ = fmt.Fprintf(w, "Due today: %d, overdue: %d\n", sum.DueToday, sum.Overdue)

	keys := n.Service.Keys(ctx)
	sort.Strings(keys)
	_, _ = fmt.Fprintf(w, "Keys:\n")
	if len(keys) == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", "no keys")
	}
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "  %s\n", k)
	}
	return nil
}
