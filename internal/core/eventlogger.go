package core

// EventLogger receives one event per successful task mutation, e.g.
// "task.created" with the task_id in data. A failed LogEvent never fails the
// mutation that triggered it.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}
