package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the task store and where it is kept.",
		Example: `
tasklists info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withService(func(svc *app.Service) error {
				s := info.Info{
					Config:  cfg,
					Service: svc,
					Out:     cmd.OutOrStdout(),
				}
				return s.Do(context.Background())
			})
		},
	}

	topLevel.AddCommand(cmd)
}
