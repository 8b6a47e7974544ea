package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

var completeCmd = &cobra.Command{
	Use:               "complete <task-id>",
	Aliases:           []string{"done"},
	Short:             "Mark an active task as completed",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs(models.StateActive),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		task, err := TaskMgr.CompleteTask(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Completed task %s\n", task.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
