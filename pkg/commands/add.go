package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/commands/options"
	"tableflip.dev/tasklists/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a task",
		Example: `
tasklists add buy milk --list shopping
tasklists add call the bank --due tomorrow --time 9:30
tasklists add -i
`,
		Args: func(_ *cobra.Command, args []string) error {
			to.Name = strings.Join(args, " ")
			if to.Name == "" && !i.Interactive {
				return errors.New("requires a task name, or -i")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(func(svc *app.Service) error {
				a := add.Add{
					Name:        to.Name,
					Icon:        to.Icon,
					Due:         to.Due,
					Time:        to.GetTime(),
					List:        to.List,
					Interactive: i.Interactive,
					ShowID:      io.ShowID,
					JSON:        oo.JSON,
					Service:     svc,
					Out:         cmd.OutOrStdout(),
				}
				return a.Do(context.Background())
			})
		},
	}

	options.AddTaskArgs(cmd, to)
	options.InteractiveArgs(cmd, i)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	registerListCompletion(cmd, "list")

	topLevel.AddCommand(cmd)
}
