package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "complete <task id>",
		Aliases: []string{"done", "toggle"},
		Short:   "Toggle whether a task is completed",
		Example: `
tasklists complete <task id>
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(svc *app.Service) error {
				c := complete.Complete{
					ID:      args[0],
					Service: svc,
					Out:     cmd.OutOrStdout(),
				}
				return c.Do(context.Background())
			})
		},
	}

	topLevel.AddCommand(cmd)
}
