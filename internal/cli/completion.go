package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
)

// completionShell describes how to generate and load one shell's script.
type completionShell struct {
	generate func(w io.Writer) error
	load     string
}

var completionShells = map[string]completionShell{
	"bash": {
		generate: func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
		load:     `eval "$(tt completion bash)"`,
	},
	"zsh": {
		generate: rootCmd.GenZshCompletion,
		load:     `source <(tt completion zsh)`,
	},
	"fish": {
		generate: func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
		load:     "tt completion fish | source",
	},
	"powershell": {
		generate: rootCmd.GenPowerShellCompletionWithDesc,
		load:     "tt completion powershell | Out-String | Invoke-Expression",
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion <shell>",
	Short: "Print a shell completion script for tt",
	Long: `Print a completion script for bash, zsh, fish or powershell.

Besides commands and flags, the script completes task IDs: 'tt complete',
'tt update' and 'tt note' offer active tasks, 'tt remove' and 'tt view'
offer every task, each shown with its title.

Load it in the current session, e.g.:

  eval "$(tt completion bash)"

or add that line to your shell profile.`,
	ValidArgs:   []string{"bash", "zsh", "fish", "powershell"},
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipInitAnnotation: "true"},
	RunE:        runCompletion,
}

func init() {
	// Replace Cobra's default completion command with ours.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(completionCmd)
}

func runCompletion(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	shell, ok := completionShells[args[0]]
	if !ok {
		names := make([]string, 0, len(completionShells))
		for name := range completionShells {
			names = append(names, name)
		}
		slices.Sort(names)
		return fmt.Errorf("unsupported shell %q (supported: %v)", args[0], names)
	}

	// Hints go to stderr so the script can be piped or eval'd.
	fmt.Fprintf(cmd.ErrOrStderr(), "# To load tt completions: %s\n", shell.load)
	return shell.generate(cmd.OutOrStdout())
}
