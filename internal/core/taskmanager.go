package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/valter-silva-au/task-tracker/internal/storage"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

// TaskStore is the subset of storage.RecordStore that TaskManager needs.
type TaskStore interface {
	Load(c models.Collection) ([]models.Task, error)
	Save(c models.Collection, tasks []models.Task) error
}

// UpdateTaskOpts carries the optional fields of an update. Nil means unchanged.
type UpdateTaskOpts struct {
	Title *string
}

// TaskManager defines the interface for task lifecycle operations. Every
// mutating call loads the collections it touches, changes them in memory,
// and writes them back before returning.
type TaskManager interface {
	CreateTask(title, note string) (*models.Task, error)
	RemoveTask(taskID string) (*models.Task, error)
	UpdateTask(taskID string, opts UpdateTaskOpts) (*models.Task, bool, error)
	CompleteTask(taskID string) (*models.Task, error)
	AnnotateTask(taskID, text string) (*models.Task, error)
	ListTasks(filter models.ListFilter) ([]models.Task, error)
	GetTask(taskID string) (*models.Task, error)
	SuggestFor(taskID string) (string, error)
}

// taskManager implements TaskManager on top of a TaskStore.
type taskManager struct {
	store     TaskStore
	idGen     TaskIDGenerator
	notes     *NoteAppender
	events    EventLogger
	suggester SuggestionProvider
}

// NewTaskManager creates a new TaskManager with all dependencies injected.
// events and suggester may be nil.
func NewTaskManager(store TaskStore, idGen TaskIDGenerator, notes *NoteAppender, events EventLogger, suggester SuggestionProvider) TaskManager {
	if notes == nil {
		notes = NewNoteAppender("", nil)
	}
	return &taskManager{
		store:     store,
		idGen:     idGen,
		notes:     notes,
		events:    events,
		suggester: suggester,
	}
}

// CreateTask appends a new active task with a fresh ID. A non-empty note
// becomes the task's first timestamped entry.
func (tm *taskManager) CreateTask(title, note string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	active, err := tm.store.Load(models.CollectionActive)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	completed, err := tm.store.Load(models.CollectionCompleted)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	taken := make(map[string]struct{}, len(active)+len(completed))
	for _, t := range active {
		taken[t.ID] = struct{}{}
	}
	for _, t := range completed {
		taken[t.ID] = struct{}{}
	}

	id, err := tm.idGen.GenerateTaskID(func(id string) bool {
		_, ok := taken[id]
		return ok
	})
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	task := models.Task{ID: id, Title: title, State: models.StateActive}
	if strings.TrimSpace(note) != "" {
		task.Notes = tm.notes.Entry(note)
	}

	active = append(active, task)
	if err := tm.store.Save(models.CollectionActive, active); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	tm.logEvent("task.created", map[string]any{"task_id": id, "title": title})
	return &task, nil
}

// RemoveTask permanently deletes a task from whichever collection holds it,
// searching active first.
func (tm *taskManager) RemoveTask(taskID string) (*models.Task, error) {
	for _, c := range []models.Collection{models.CollectionActive, models.CollectionCompleted} {
		tasks, err := tm.store.Load(c)
		if err != nil {
			return nil, fmt.Errorf("removing task %s: %w", taskID, err)
		}
		idx, err := storage.Find(tasks, taskID)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		removed := tasks[idx]
		tasks = append(tasks[:idx], tasks[idx+1:]...)
		if err := tm.store.Save(c, tasks); err != nil {
			return nil, fmt.Errorf("removing task %s: %w", taskID, err)
		}
		tm.logEvent("task.removed", map[string]any{"task_id": taskID, "collection": string(c)})
		return &removed, nil
	}
	return nil, &NotFoundError{ID: taskID, Scope: "active or completed"}
}

// UpdateTask changes the title of an active task. The returned bool reports
// whether anything was written.
func (tm *taskManager) UpdateTask(taskID string, opts UpdateTaskOpts) (*models.Task, bool, error) {
	if opts.Title != nil && strings.TrimSpace(*opts.Title) == "" {
		return nil, false, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	active, idx, err := tm.loadActive(taskID)
	if err != nil {
		return nil, false, fmt.Errorf("updating task %s: %w", taskID, err)
	}

	if opts.Title == nil || *opts.Title == active[idx].Title {
		task := active[idx]
		return &task, false, nil
	}

	oldTitle := active[idx].Title
	active[idx].Title = *opts.Title
	if err := tm.store.Save(models.CollectionActive, active); err != nil {
		return nil, false, fmt.Errorf("updating task %s: %w", taskID, err)
	}

	tm.logEvent("task.updated", map[string]any{"task_id": taskID, "old_title": oldTitle, "new_title": *opts.Title})
	task := active[idx]
	return &task, true, nil
}

// CompleteTask moves an active task to the completed collection. The
// completed file is written first; if rewriting the active file then fails,
// the completed file is put back so the task is not left in both.
func (tm *taskManager) CompleteTask(taskID string) (*models.Task, error) {
	active, idx, err := tm.loadActive(taskID)
	if err != nil {
		return nil, fmt.Errorf("completing task %s: %w", taskID, err)
	}
	completed, err := tm.store.Load(models.CollectionCompleted)
	if err != nil {
		return nil, fmt.Errorf("completing task %s: %w", taskID, err)
	}
	if _, err := storage.Find(completed, taskID); err == nil {
		return nil, fmt.Errorf("completing task %s: already present in completed tasks", taskID)
	}

	task := active[idx]
	task.State = models.StateCompleted

	previous := completed
	moved := make([]models.Task, len(completed), len(completed)+1)
	copy(moved, completed)
	moved = append(moved, task)
	if err := tm.store.Save(models.CollectionCompleted, moved); err != nil {
		return nil, fmt.Errorf("completing task %s: %w", taskID, err)
	}

	remaining := append(active[:idx:idx], active[idx+1:]...)
	if err := tm.store.Save(models.CollectionActive, remaining); err != nil {
		if rbErr := tm.store.Save(models.CollectionCompleted, previous); rbErr != nil {
			return nil, fmt.Errorf("completing task %s: %w (restoring completed tasks: %v)", taskID, err, rbErr)
		}
		return nil, fmt.Errorf("completing task %s: %w", taskID, err)
	}

	tm.logEvent("task.completed", map[string]any{"task_id": taskID})
	return &task, nil
}

// AnnotateTask appends a timestamped entry to an active task's notes.
func (tm *taskManager) AnnotateTask(taskID, text string) (*models.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "note", Reason: "must not be empty"}
	}

	active, idx, err := tm.loadActive(taskID)
	if err != nil {
		return nil, fmt.Errorf("adding note to task %s: %w", taskID, err)
	}

	active[idx].Notes = tm.notes.Append(active[idx].Notes, text)
	if err := tm.store.Save(models.CollectionActive, active); err != nil {
		return nil, fmt.Errorf("adding note to task %s: %w", taskID, err)
	}

	tm.logEvent("task.noted", map[string]any{"task_id": taskID})
	task := active[idx]
	return &task, nil
}

// ListTasks returns the tasks selected by filter: active (the default),
// completed, or all with active tasks first. Nothing is written.
func (tm *taskManager) ListTasks(filter models.ListFilter) ([]models.Task, error) {
	var collections []models.Collection
	switch filter {
	case "", models.ListActive:
		collections = []models.Collection{models.CollectionActive}
	case models.ListCompleted:
		collections = []models.Collection{models.CollectionCompleted}
	case models.ListAll:
		collections = []models.Collection{models.CollectionActive, models.CollectionCompleted}
	default:
		return nil, &ValidationError{Field: "filter", Reason: fmt.Sprintf("%q is not one of active, completed, all", filter)}
	}

	result := []models.Task{}
	for _, c := range collections {
		tasks, err := tm.store.Load(c)
		if err != nil {
			return nil, fmt.Errorf("listing tasks: %w", err)
		}
		result = append(result, tasks...)
	}
	return result, nil
}

// GetTask looks a task up in active, then completed.
func (tm *taskManager) GetTask(taskID string) (*models.Task, error) {
	for _, c := range []models.Collection{models.CollectionActive, models.CollectionCompleted} {
		tasks, err := tm.store.Load(c)
		if err != nil {
			return nil, fmt.Errorf("getting task %s: %w", taskID, err)
		}
		if idx, err := storage.Find(tasks, taskID); err == nil {
			task := tasks[idx]
			return &task, nil
		}
	}
	return nil, &NotFoundError{ID: taskID, Scope: "active or completed"}
}

// SuggestFor asks the configured SuggestionProvider about a task.
func (tm *taskManager) SuggestFor(taskID string) (string, error) {
	if tm.suggester == nil {
		return "", ErrNoSuggestionProvider
	}
	task, err := tm.GetTask(taskID)
	if err != nil {
		return "", err
	}
	suggestion, err := tm.suggester.Suggest(*task)
	if err != nil {
		return "", fmt.Errorf("suggesting for task %s: %w", taskID, err)
	}
	return suggestion, nil
}

// loadActive loads the active collection and locates taskID in it.
func (tm *taskManager) loadActive(taskID string) ([]models.Task, int, error) {
	active, err := tm.store.Load(models.CollectionActive)
	if err != nil {
		return nil, -1, err
	}
	idx, err := storage.Find(active, taskID)
	if err != nil {
		return nil, -1, &NotFoundError{ID: taskID, Scope: "active"}
	}
	return active, idx, nil
}

// logEvent records an event if a logger is wired. Failures are ignored so
// that logging never fails a command.
func (tm *taskManager) logEvent(eventType string, data map[string]any) {
	if tm.events == nil {
		return
	}
	_ = tm.events.LogEvent(eventType, data)
}
