package commands

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/state"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(tasklists completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(tasklists completion)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return topLevel.GenBashCompletionV2(cmd.OutOrStdout(), true)
		},
	}

	topLevel.AddCommand(cmd)
}

func registerListCompletion(cmd *cobra.Command, flag string) {
	_ = cmd.RegisterFlagCompletionFunc(flag, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return listCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// listCompletions returns the list names starting with toComplete.
func listCompletions(toComplete string) []string {
	svc, err := openService()
	if err != nil {
		log.WithError(err).Debug("completion: open store")
		return nil
	}
	defer svc.Close()

	var names []string
	_ = svc.Do(func(st *state.State) error {
		names = matchingLists(st, toComplete)
		return nil
	})
	return names
}

func matchingLists(st *state.State, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var names []string
	for _, l := range st.Lists {
		if strings.HasPrefix(strings.ToLower(l.Name), prefix) {
			names = append(names, l.Name)
		}
	}
	return names
}
