package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server on stdio",
		Long: `Launch an MCP server that exposes tasks, lists and their mutations
to an agent over stdin and stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(svc *app.Service) error {
				runner := mcp.Runner{
					Service: svc,
					Name:    "tasklists",
					Version: version,
					Stdin:   cmd.InOrStdin(),
					Stdout:  cmd.OutOrStdout(),
				}
				return runner.Do(cmd.Context())
			})
		},
	}

	topLevel.AddCommand(cmd)
}
