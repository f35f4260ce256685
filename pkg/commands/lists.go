package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/commands/options"
	"tableflip.dev/tasklists/pkg/runner/lists"
)

func addLists(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Print and manage task lists",
		Example: `
tasklists lists
tasklists lists add Errands --icon fa-car
tasklists lists reorder work --position 0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(func(svc *app.Service) error {
				g := lists.Get{ShowID: io.ShowID, JSON: oo.JSON, Service: svc, Out: cmd.OutOrStdout()}
				return g.Do(context.Background())
			})
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	addListsGet(cmd)
	addListsAdd(cmd)
	addListsRename(cmd)
	addListsDelete(cmd)
	addListsReorder(cmd)

	topLevel.AddCommand(cmd)
}

func addListsGet(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the lists in order with task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(func(svc *app.Service) error {
				g := lists.Get{ShowID: io.ShowID, JSON: oo.JSON, Service: svc, Out: cmd.OutOrStdout()}
				return g.Do(context.Background())
			})
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	parent.AddCommand(cmd)
}

func addListsAdd(parent *cobra.Command) {
	icon := ""

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a list at the end",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(svc *app.Service) error {
				a := lists.Add{
					Name:    strings.Join(args, " "),
					Icon:    icon,
					Service: svc,
					Out:     cmd.OutOrStdout(),
				}
				return a.Do(context.Background())
			})
		},
	}
	cmd.Flags().StringVar(&icon, "icon", "", `Icon for the list, example: --icon=fa-car. See "tasklists key".`)

	parent.AddCommand(cmd)
}

func addListsRename(parent *cobra.Command) {
	var name, icon, id string

	cmd := &cobra.Command{
		Use:   "rename <list> [new name]",
		Short: "Rename a list or change its icon or id",
		Example: `
tasklists lists rename work Job
tasklists lists rename job --icon fa-building
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := lists.Rename{List: args[0]}
			if len(args) == 2 {
				name = args[1]
				r.Name = &name
			} else if cmd.Flags().Changed("name") {
				r.Name = &name
			}
			if cmd.Flags().Changed("icon") {
				r.Icon = &icon
			}
			if cmd.Flags().Changed("id") {
				r.ID = &id
			}
			return withService(func(svc *app.Service) error {
				r.Service = svc
				r.Out = cmd.OutOrStdout()
				return r.Do(context.Background())
			})
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return listCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New name.")
	cmd.Flags().StringVar(&icon, "icon", "", "New icon.")
	cmd.Flags().StringVar(&id, "id", "", "New id. Tasks in the list follow it.")

	parent.AddCommand(cmd)
}

func addListsDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <list>",
		Aliases: []string{"rm"},
		Short:   "Delete a list; its tasks move to Uncategorized",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(svc *app.Service) error {
				d := lists.Delete{List: strings.Join(args, " "), Service: svc, Out: cmd.OutOrStdout()}
				return d.Do(context.Background())
			})
		},
		ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return listCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
	}

	parent.AddCommand(cmd)
}

func addListsReorder(parent *cobra.Command) {
	position := -1

	cmd := &cobra.Command{
		Use:   "reorder <list>...",
		Short: "Reorder lists",
		Long: `Give every list to set the whole order, or one list with --position to move
just that list, shifting the others.`,
		Example: `
tasklists lists reorder shopping work personal uncategorized
tasklists lists reorder shopping --position 0
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(svc *app.Service) error {
				r := lists.Reorder{
					Lists:    args,
					Position: position,
					Service:  svc,
					Out:      cmd.OutOrStdout(),
				}
				return r.Do(context.Background())
			})
		},
		ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return listCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
	}
	cmd.Flags().IntVar(&position, "position", -1, "Zero-based position for a single list.")

	parent.AddCommand(cmd)
}
