package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/valter-silva-au/task-tracker/internal/core"
	"github.com/valter-silva-au/task-tracker/internal/storage"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

var cliTestNow = time.Date(2026, 3, 14, 9, 26, 0, 0, time.Local)

// resetFlags restores every flag in the tree to its default so values from
// one Execute call do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command with args and returns everything it
// wrote to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

// useFileTaskManager points TaskMgr at a real task manager backed by CSV
// files in a temp dir and restores the previous value when the test ends.
func useFileTaskManager(t *testing.T) (core.TaskManager, models.StorePaths) {
	t.Helper()
	dir := t.TempDir()
	paths := models.StorePaths{
		Active:    filepath.Join(dir, "active-tasks.csv"),
		Completed: filepath.Join(dir, "completed-tasks.csv"),
	}
	tm := core.NewTaskManager(
		storage.NewRecordStore(paths),
		core.NewTaskIDGenerator(core.DefaultTaskIDLength),
		core.NewNoteAppender(core.DefaultTimestampFormat, func() time.Time { return cliTestNow }),
		nil,
		nil,
	)

	orig := TaskMgr
	TaskMgr = tm
	t.Cleanup(func() { TaskMgr = orig })
	return tm, paths
}

// taskMgrStub implements core.TaskManager with overridable behavior. Unset
// functions return zero values.
type taskMgrStub struct {
	createFn   func(title, note string) (*models.Task, error)
	removeFn   func(id string) (*models.Task, error)
	updateFn   func(id string, opts core.UpdateTaskOpts) (*models.Task, bool, error)
	completeFn func(id string) (*models.Task, error)
	annotateFn func(id, text string) (*models.Task, error)
	listFn     func(filter models.ListFilter) ([]models.Task, error)
	getFn      func(id string) (*models.Task, error)
}

func (s *taskMgrStub) CreateTask(title, note string) (*models.Task, error) {
	if s.createFn == nil {
		return &models.Task{}, nil
	}
	return s.createFn(title, note)
}

func (s *taskMgrStub) RemoveTask(id string) (*models.Task, error) {
	if s.removeFn == nil {
		return &models.Task{ID: id}, nil
	}
	return s.removeFn(id)
}

func (s *taskMgrStub) UpdateTask(id string, opts core.UpdateTaskOpts) (*models.Task, bool, error) {
	if s.updateFn == nil {
		return &models.Task{ID: id}, false, nil
	}
	return s.updateFn(id, opts)
}

func (s *taskMgrStub) CompleteTask(id string) (*models.Task, error) {
	if s.completeFn == nil {
		return &models.Task{ID: id}, nil
	}
	return s.completeFn(id)
}

func (s *taskMgrStub) AnnotateTask(id, text string) (*models.Task, error) {
	if s.annotateFn == nil {
		return &models.Task{ID: id}, nil
	}
	return s.annotateFn(id, text)
}

func (s *taskMgrStub) ListTasks(filter models.ListFilter) ([]models.Task, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(filter)
}

func (s *taskMgrStub) GetTask(id string) (*models.Task, error) {
	if s.getFn == nil {
		return &models.Task{ID: id}, nil
	}
	return s.getFn(id)
}

func (s *taskMgrStub) SuggestFor(string) (string, error) {
	return "", core.ErrNoSuggestionProvider
}

func useTaskMgr(t *testing.T, tm core.TaskManager) {
	t.Helper()
	orig := TaskMgr
	TaskMgr = tm
	t.Cleanup(func() { TaskMgr = orig })
}
