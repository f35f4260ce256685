package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/commands/options"
	"tableflip.dev/tasklists/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"ls", "list"},
		Short:   "Print tasks grouped by list or by due date",
		Example: `
tasklists get
tasklists get --view date --date today --date tomorrow
tasklists get --keyword milk --list shopping --all
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			buckets, err := fo.GetDates()
			if err != nil {
				return oo.HandleError(err)
			}
			return withService(func(svc *app.Service) error {
				g := get.Get{
					View:    fo.View,
					Keyword: strings.TrimSpace(fo.Keyword),
					Dates:   buckets,
					Lists:   fo.Lists,
					All:     fo.All,
					ShowID:  io.ShowID,
					JSON:    oo.JSON,
					Service: svc,
					Out:     cmd.OutOrStdout(),
				}
				return g.Do(context.Background())
			})
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	registerListCompletion(cmd, "list")
	_ = cmd.RegisterFlagCompletionFunc("view", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"list", "date"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("date", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"today", "tomorrow", "week", "no-date"}, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
