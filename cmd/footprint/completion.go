package footprint

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func init() {
	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Print a shell completion script for footprint",
		Long: `Print a completion script for footprint to stdout.

The script completes subcommands, flags and the values of --category
(credentials, sessions, comprehensive) and --format (table, text, json).`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: completionShells,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCompletion(cmd, args[0])
		},
		Example: `  footprint completion bash > /etc/bash_completion.d/footprint
  footprint completion zsh > "${fpath[1]}/_footprint"
  footprint completion fish > ~/.config/fish/completions/footprint.fish
  footprint completion powershell | Out-String | Invoke-Expression`,
	}
	rootCmd.AddCommand(cmd)
}

func writeCompletion(cmd *cobra.Command, shell string) error {
	root, out := cmd.Root(), cmd.OutOrStdout()
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(out)
	}
	return fmt.Errorf("unsupported shell %q (want one of %v)", shell, completionShells)
}

// fixedValues completes a flag from a closed set of values.
func fixedValues(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
