package options

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/dates"
)

// TaskOptions carries the task fields settable from flags.
type TaskOptions struct {
	Name string
	Icon string
	Due  string
	Time string
	List string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Icon, "icon", "",
		`Icon for the task, example: --icon=fa-phone. See "tasklists key".`)
	cmd.Flags().StringVarP(&o.Due, "due", "d", "",
		`Due date, example: --due=tomorrow, --due=2024-05-01, --due=5/1, --due=3d or --due=none.`)
	cmd.Flags().StringVarP(&o.Time, "time", "t", "",
		`Due time as HH:MM, example: --time=14:30.`)
	cmd.Flags().StringVarP(&o.List, "list", "l", "",
		"List id or name.")
}

// AddNameArg registers --name for commands that edit an existing task.
func AddNameArg(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"New name for the task.")
}

// GetDue resolves --due to an ISO date, or "" to clear it.
func (o *TaskOptions) GetDue(now time.Time) (string, error) {
	return dates.ParseDue(o.Due, now)
}

// GetTime returns --time trimmed.
func (o *TaskOptions) GetTime() string {
	return strings.TrimSpace(o.Time)
}
