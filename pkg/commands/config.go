package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/runner/config"
)

func addConfig(topLevel *cobra.Command) {
	c := config.Config{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Example: `
tasklists config
tasklists config --init
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c.Config = cfg
			c.Out = cmd.OutOrStdout()
			return oo.HandleError(c.Do(context.Background()))
		},
	}
	cmd.Flags().BoolVar(&c.Init, "init", false, "Write the configuration file if it does not exist yet.")
	cmd.Flags().StringVar(&c.Dir, "dir", ".", "Directory for --init.")

	topLevel.AddCommand(cmd)
}
