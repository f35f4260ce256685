package commands

import (
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/app"
	"tableflip.dev/tasklists/pkg/commands/options"
	"tableflip.dev/tasklists/pkg/store"
)

var (
	oo  = &options.OutputOptions{}
	cfg *store.Config
)

func New() *cobra.Command {
	verbose := false

	cmd := &cobra.Command{
		Use:   "tasklists",
		Short: base.Wrap80("Task lists with due dates on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := store.LoadConfig()
			if err != nil {
				return err
			}
			cfg = loaded
			configureLogging(cfg.LogLevel, verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log debug output to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addComplete(topLevel)
	addMove(topLevel)
	addDelete(topLevel)
	addRestore(topLevel)
	addPurge(topLevel)
	addTrash(topLevel)
	addLists(topLevel)
	addInfo(topLevel)
	addConfig(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}

func configureLogging(level string, verbose bool) {
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithError(err).Warn("unknown log level, using warn")
		lvl = log.WarnLevel
	}
	log.SetLevel(lvl)
}

// openService opens the configured store. Callers close it.
func openService() (*app.Service, error) {
	return app.Open(cfg)
}

// withService runs fn against the configured store and routes the result
// through the output options.
func withService(fn func(svc *app.Service) error) error {
	svc, err := openService()
	if err != nil {
		return oo.HandleError(err)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			log.WithError(err).Warn("closing store")
		}
	}()
	return oo.HandleError(fn(svc))
}
