package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:               "view <task-id>",
	Short:             "Show one task with its full notes",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		task, err := TaskMgr.GetTask(args[0])
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), renderTaskDetail(*task))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
