package observability

import (
	"fmt"
	"time"
)

// Metrics holds counts derived from the event log.
type Metrics struct {
	TasksCreated   int            `json:"tasks_created" yaml:"tasks_created"`
	TasksCompleted int            `json:"tasks_completed" yaml:"tasks_completed"`
	TasksRemoved   int            `json:"tasks_removed" yaml:"tasks_removed"`
	TasksUpdated   int            `json:"tasks_updated" yaml:"tasks_updated"`
	NotesAdded     int            `json:"notes_added" yaml:"notes_added"`
	CompletedByDay map[string]int `json:"completed_by_day" yaml:"completed_by_day"`
	EventCount     int            `json:"event_count" yaml:"event_count"`
	OldestEvent    *time.Time     `json:"oldest_event,omitempty" yaml:"oldest_event,omitempty"`
	NewestEvent    *time.Time     `json:"newest_event,omitempty" yaml:"newest_event,omitempty"`
}

// MetricsCalculator derives metrics from the event log.
type MetricsCalculator interface {
	Calculate(filter EventFilter) (*Metrics, error)
}

type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a MetricsCalculator reading from eventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate aggregates the events selected by filter. Completion days are
// keyed by local date (YYYY-MM-DD).
func (mc *metricsCalculator) Calculate(filter EventFilter) (*Metrics, error) {
	events, err := mc.eventLog.Read(filter)
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{
		CompletedByDay: make(map[string]int),
		EventCount:     len(events),
	}

	for _, event := range events {
		t := event.Time
		if m.OldestEvent == nil || t.Before(*m.OldestEvent) {
			m.OldestEvent = &t
		}
		if m.NewestEvent == nil || t.After(*m.NewestEvent) {
			m.NewestEvent = &t
		}

		switch event.Type {
		case "task.created":
			m.TasksCreated++
		case "task.completed":
			m.TasksCompleted++
			m.CompletedByDay[event.Time.Local().Format("2006-01-02")]++
		case "task.removed":
			m.TasksRemoved++
		case "task.updated":
			m.TasksUpdated++
		case "task.noted":
			m.NotesAdded++
		}
	}

	return m, nil
}
