package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <task-id>",
	Aliases: []string{"rm"},
	Short:   "Permanently delete a task",
	Long: `Delete a task from whichever list holds it. Active tasks are searched
first, then completed ones. There is no undo.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		task, err := TaskMgr.RemoveTask(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s task %s\n", task.State, task.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
