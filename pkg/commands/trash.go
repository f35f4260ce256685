package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/commands/options"
	"tableflip.dev/tasklists/pkg/runner/trash"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <task id>",
		Aliases: []string{"rm"},
		Short:   "Move a task to the trash",
		Example: `
tasklists delete <task id>
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(svc *app.Service) error {
				d := trash.Delete{ID: args[0], Service: svc, Out: cmd.OutOrStdout()}
				return d.Do(context.Background())
			})
		},
	}

	topLevel.AddCommand(cmd)
}

func addRestore(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "restore <task id>",
		Short: "Bring a task back from the trash",
		Long: base.Wrap80(`Restore a deleted task. If its list was deleted in the meantime it goes to
the first list instead.`),
		Example: `
tasklists restore <task id>
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(svc *app.Service) error {
				r := trash.Restore{ID: args[0], Service: svc, Out: cmd.OutOrStdout()}
				return r.Do(context.Background())
			})
		},
	}

	topLevel.AddCommand(cmd)
}

func addPurge(topLevel *cobra.Command) {
	all := false

	cmd := &cobra.Command{
		Use:   "purge [task id]",
		Short: "Delete tasks in the trash forever",
		Example: `
tasklists purge <task id>
tasklists purge --all
`,
		Args: func(_ *cobra.Command, args []string) error {
			switch {
			case all && len(args) > 0:
				return errors.New("use either a task id or --all")
			case !all && len(args) != 1:
				return errors.New("requires a task id, or --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := trash.Purge{All: all}
			if len(args) > 0 {
				p.ID = args[0]
			}
			return withService(func(svc *app.Service) error {
				p.Service = svc
				p.Out = cmd.OutOrStdout()
				return p.Do(context.Background())
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Empty the whole trash.")

	topLevel.AddCommand(cmd)
}

func addTrash(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "trash",
		Short: "Print the tasks in the trash",
		Example: `
tasklists trash --show-id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(func(svc *app.Service) error {
				s := trash.Show{ShowID: io.ShowID, JSON: oo.JSON, Service: svc, Out: cmd.OutOrStdout()}
				return s.Do(context.Background())
			})
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
