package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generates shell completion scripts",
		Long: `To load completion run

. <(eod completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(eod completion)
`,
		Args:             cobra.MaximumNArgs(1),
		ValidArgs:        []string{"bash", "zsh", "fish"},
		PersistentPreRun: func(*cobra.Command, []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) == 1 {
				shell = args[0]
			}
			out := cmd.OutOrStdout()
			switch shell {
			case "bash":
				return topLevel.GenBashCompletion(out)
			case "zsh":
				return topLevel.GenZshCompletion(out)
			case "fish":
				return topLevel.GenFishCompletion(out, true)
			}
			return fmt.Errorf("unsupported shell %q", shell)
		},
	}

	topLevel.AddCommand(cmd)
}

// entryCompletions offers saved entry ids, described by their titles.
func entryCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	e, err := openEnv(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer e.Close()

	var ids []string
	for _, en := range e.journal.List() {
		ids = append(ids, fmt.Sprintf("%s\t%s", en.ID, en.Heading()))
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
