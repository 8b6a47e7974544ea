package core

import "github.com/valter-silva-au/task-tracker/pkg/models"

// SuggestionProvider produces free-text suggestions for a task, such as a
// next step or a rewritten title. No implementation ships with tt; the
// interface marks where one would plug into TaskManager.
type SuggestionProvider interface {
	Suggest(task models.Task) (string, error)
}
