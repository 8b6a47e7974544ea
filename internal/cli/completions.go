package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

// completeTaskIDs returns a completion function that lists task IDs,
// optionally restricted to the given states. With no states every task
// is offered.
func completeTaskIDs(states ...models.TaskState) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if TaskMgr == nil || len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		filter := models.ListAll
		if len(states) == 1 && states[0] == models.StateActive {
			filter = models.ListActive
		}

		tasks, err := TaskMgr.ListTasks(filter)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var ids []string
		for _, task := range tasks {
			if len(states) > 0 && !slices.Contains(states, task.State) {
				continue
			}
			if toComplete == "" || strings.HasPrefix(task.ID, toComplete) {
				// Title as description.
				ids = append(ids, task.ID+"\t"+singleLine(task.Title))
			}
		}

		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}
