package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// skipInitAnnotation marks commands that run even when startup failed, so
// a broken config.yaml can still be inspected or rewritten.
const skipInitAnnotation = "tt.skip-init"

// initErr is the startup failure recorded by SetInitError.
var initErr error

// SetInitError records why the app could not be wired. Commands that need
// the task store fail with it; version, config and completion still run.
func SetInitError(err error) {
	initErr = err
}

// requiresInit reports whether cmd needs a fully wired app.
func requiresInit(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipInitAnnotation] == "true" {
			return false
		}
		switch c.Name() {
		case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "tt",
	Short: "tt - a personal task tracker",
	Long: `tt keeps a personal list of tasks in two flat files: one for active
tasks and one for completed tasks.

Create tasks, retitle them, append timestamped notes, mark them complete,
and list or browse what is left.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if initErr != nil && requiresInit(cmd) {
			return fmt.Errorf("initializing tt: %w", initErr)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Annotations: map[string]string{skipInitAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tt %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
