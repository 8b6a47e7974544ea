package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

var noteCmd = &cobra.Command{
	Use:   "note <task-id> <text>",
	Short: "Append a timestamped note to an active task",
	Long: `Append a note to an active task. Each note is stored on its own line
as "[YYYY-MM-DD HH:MM] text"; earlier notes are never modified.`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeTaskIDs(models.StateActive),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		task, err := TaskMgr.AnnotateTask(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note added to task %s\n", task.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
}
