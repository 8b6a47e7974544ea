package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/task-tracker/internal/core"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

var updateTitleFlag string

var updateCmd = &cobra.Command{
	Use:     "update <task-id>",
	Aliases: []string{"upd"},
	Short:   "Change the title of an active task",
	Long: `Change the title of an active task. Notes are left untouched; use
'tt note' to add to them. Completed tasks cannot be retitled.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs(models.StateActive),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		var opts core.UpdateTaskOpts
		if cmd.Flags().Changed("title") {
			title := updateTitleFlag
			opts.Title = &title
		}

		task, changed, err := TaskMgr.UpdateTask(args[0], opts)
		if err != nil {
			return err
		}

		if !changed {
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s unchanged\n", task.ID)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", task.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateTitleFlag, "title", "t", "", "New task title")
	rootCmd.AddCommand(updateCmd)
}
