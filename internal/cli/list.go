package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

var (
	listCompletedFlag bool
	listAllFlag       bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List active tasks, or completed tasks with --completed, or both with
--all. With --all, active tasks come first, then completed ones, each in
the order they were stored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		filter := models.ListActive
		heading := "Active tasks"
		switch {
		case listAllFlag:
			filter = models.ListAll
			heading = "All tasks"
		case listCompletedFlag:
			filter = models.ListCompleted
			heading = "Completed tasks"
		}

		tasks, err := TaskMgr.ListTasks(filter)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks found.")
			return nil
		}

		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s (%d)", heading, len(tasks))))
		fmt.Fprintln(out, renderTaskTable(tasks))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listCompletedFlag, "completed", "c", false, "List completed tasks")
	listCmd.Flags().BoolVarP(&listAllFlag, "all", "a", false, "List active and completed tasks")
	listCmd.MarkFlagsMutuallyExclusive("completed", "all")
	rootCmd.AddCommand(listCmd)
}
