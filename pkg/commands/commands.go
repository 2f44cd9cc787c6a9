package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/eod/pkg/commands/options"
	"tableflip.dev/eod/pkg/logging"
	"tableflip.dev/eod/pkg/store"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eod",
		Short: options.Wrap80("End of day journal on the command line."),
		Long: options.Wrap80("Compose dated end-of-day entries, preview the formatted text, " +
			"copy it to the clipboard and keep a local history of what you shipped."),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("backend", store.BackendDiskv, "Storage backend: diskv, sqlite or memory.")
	flags.String("path", "~/.eod", "Directory holding the journal.")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error.")
	for _, name := range []string{"backend", "path", "log-level"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addNew(topLevel)
	addEdit(topLevel)
	addPreview(topLevel)
	addTemplate(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addDelete(topLevel)
	addClear(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addCopy(topLevel)
	addTheme(topLevel)
	addCompose(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
