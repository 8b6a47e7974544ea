package models

// TaskState represents which lifecycle collection currently holds a task.
type TaskState string

const (
	StateActive    TaskState = "active"
	StateCompleted TaskState = "completed"
)

// Collection names one of the two persisted task collections.
type Collection string

const (
	CollectionActive    Collection = "active"
	CollectionCompleted Collection = "completed"
)

// State returns the task state implied by membership in the collection.
func (c Collection) State() TaskState {
	if c == CollectionCompleted {
		return StateCompleted
	}
	return StateActive
}

// ListFilter selects which collections a listing covers.
type ListFilter string

const (
	ListActive    ListFilter = "active"
	ListCompleted ListFilter = "completed"
	ListAll       ListFilter = "all"
)

// Task is a single tracked work item. State is never persisted: it is
// derived from the collection the record was loaded from.
type Task struct {
	ID    string    `yaml:"id" json:"id"`
	Title string    `yaml:"title" json:"title"`
	Notes string    `yaml:"notes,omitempty" json:"notes,omitempty"`
	State TaskState `yaml:"state" json:"state"`
}

// StorePaths holds the backing file locations for both collections.
type StorePaths struct {
	Active    string `yaml:"active" mapstructure:"active"`
	Completed string `yaml:"completed" mapstructure:"completed"`
}

// For returns the path backing the given collection.
func (p StorePaths) For(c Collection) string {
	if c == CollectionCompleted {
		return p.Completed
	}
	return p.Active
}
