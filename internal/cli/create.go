package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createNoteFlag string

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new task",
	Long: `Create a new active task and print its ID.

Use --note to attach a first note; it is stamped with the current time
like any note added later with 'tt note'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		task, err := TaskMgr.CreateTask(args[0], createNoteFlag)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", task.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createNoteFlag, "note", "n", "", "Initial note for the task")
	rootCmd.AddCommand(createCmd)
}
