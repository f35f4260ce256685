package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "move <task id> <list>",
		Short: "Move a task to another list",
		Example: `
tasklists move <task id> work
tasklists move <task id> "Uncategorized"
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(svc *app.Service) error {
				m := move.Move{
					ID:      args[0],
					List:    strings.Join(args[1:], " "),
					Service: svc,
					Out:     cmd.OutOrStdout(),
				}
				return m.Do(context.Background())
			})
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return listCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
	}

	topLevel.AddCommand(cmd)
}
