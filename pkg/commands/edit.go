package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/commands/options"
	"tableflip.dev/tasklists/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <task id>",
		Short: "Change the name, icon, due date or list of a task",
		Example: `
tasklists edit 6f1c --name "buy oat milk"
tasklists edit 6f1c --due none --time ""
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := func(name string, v *string) *string {
				if cmd.Flags().Changed(name) {
					return v
				}
				return nil
			}
			return withService(func(svc *app.Service) error {
				e := edit.Edit{
					ID:      args[0],
					Name:    changed("name", &to.Name),
					Icon:    changed("icon", &to.Icon),
					Due:     changed("due", &to.Due),
					Time:    changed("time", &to.Time),
					List:    changed("list", &to.List),
					ShowID:  io.ShowID,
					Service: svc,
					Out:     cmd.OutOrStdout(),
				}
				return e.Do(context.Background())
			})
		},
	}

	options.AddNameArg(cmd, to)
	options.AddTaskArgs(cmd, to)
	options.AddShowIDArgs(cmd, io)
	registerListCompletion(cmd, "list")

	topLevel.AddCommand(cmd)
}
