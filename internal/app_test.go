package internal

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/valter-silva-au/task-tracker/internal/cli"
	"github.com/valter-silva-au/task-tracker/internal/core"
	"github.com/valter-silva-au/task-tracker/internal/observability"
)

func TestResolveBasePath_HomeEnvSet(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(HomeEnvVar, tmpDir)

	if got := ResolveBasePath(); got != tmpDir {
		t.Errorf("ResolveBasePath() = %q, want %q", got, tmpDir)
	}
}

func TestResolveBasePath_UserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	cfgHome := t.TempDir()
	t.Setenv(HomeEnvVar, "")
	t.Setenv("XDG_CONFIG_HOME", cfgHome)

	want := filepath.Join(cfgHome, "tt")
	if got := ResolveBasePath(); got != want {
		t.Errorf("ResolveBasePath() = %q, want %q", got, want)
	}
}

func newTestApp(t *testing.T, basePath string) *App {
	t.Helper()
	app, err := NewApp(basePath)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestNewApp_WiresServices(t *testing.T) {
	dir := t.TempDir()
	app := newTestApp(t, dir)

	if app.TaskMgr == nil || app.Store == nil || app.IDGen == nil || app.Notes == nil {
		t.Fatal("core services should be wired")
	}
	if app.EventLog == nil || app.MetricsCalc == nil {
		t.Fatal("event log should be enabled by default")
	}
	if cli.TaskMgr != app.TaskMgr {
		t.Error("cli.TaskMgr should point at the app's task manager")
	}
	if cli.Config != app.Config || cli.BasePath != dir {
		t.Error("cli configuration variables should be set")
	}
}

func TestNewApp_Lifecycle(t *testing.T) {
	dir := t.TempDir()
	app := newTestApp(t, dir)

	task, err := app.TaskMgr.CreateTask("Buy milk", "2 litres")
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if len(task.ID) != core.DefaultTaskIDLength {
		t.Errorf("id %q should have %d characters", task.ID, core.DefaultTaskIDLength)
	}
	if _, err := app.TaskMgr.AnnotateTask(task.ID, "semi-skimmed"); err != nil {
		t.Fatalf("AnnotateTask: %v", err)
	}
	if _, err := app.TaskMgr.CompleteTask(task.ID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	for _, name := range []string{"active-tasks.csv", "completed-tasks.csv", "events.jsonl"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}

	events, err := app.EventLog.Read(observability.EventFilter{TaskID: task.ID})
	if err != nil {
		t.Fatalf("reading events: %v", err)
	}
	var types []string
	for _, e := range events {
		types = append(types, e.Type)
	}
	want := "task.created,task.noted,task.completed"
	if strings.Join(types, ",") != want {
		t.Errorf("event types = %v, want %s", types, want)
	}

	since := time.Now().Add(-time.Hour)
	m, err := app.MetricsCalc.Calculate(observability.EventFilter{Since: &since})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if m.TasksCreated != 1 || m.TasksCompleted != 1 || m.NotesAdded != 1 {
		t.Errorf("metrics = %+v", m)
	}
}

func TestNewApp_EventsDisabled(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, core.ConfigFileName), []byte("events:\n  enabled: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	app := newTestApp(t, dir)
	if app.EventLog != nil || app.MetricsCalc != nil {
		t.Error("event log should be off when events.enabled is false")
	}
	if _, err := app.TaskMgr.CreateTask("quiet", ""); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "events.jsonl")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("events.jsonl should not be created, stat err = %v", err)
	}
}

func TestNewApp_CustomPaths(t *testing.T) {
	dir := t.TempDir()
	cfg := "storage:\n  active_file: data/open.csv\n  completed_file: data/closed.csv\ntask_id:\n  length: 12\n"
	if err := os.WriteFile(filepath.Join(dir, core.ConfigFileName), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	app := newTestApp(t, dir)
	task, err := app.TaskMgr.CreateTask("custom", "")
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if len(task.ID) != 12 {
		t.Errorf("id %q should have 12 characters", task.ID)
	}
	if _, err := os.Stat(filepath.Join(dir, "data", "open.csv")); err != nil {
		t.Errorf("active file should be at the configured path: %v", err)
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, core.ConfigFileName), []byte("task_id:\n  length: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewApp(dir)
	if err == nil || !strings.Contains(err.Error(), "task_id.length") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNewApp_MalformedConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, core.ConfigFileName), []byte("storage: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewApp(dir); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestNewApp_FailedConfigStillWiresConfigManager(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, core.ConfigFileName)
	if err := os.WriteFile(path, []byte("storage: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewApp(dir); err == nil {
		t.Fatal("expected error for malformed config")
	}
	if cli.ConfigMgr == nil || cli.ConfigMgr.ConfigFilePath() != path {
		t.Fatalf("config manager not wired for %s", path)
	}
	if cli.BasePath != dir {
		t.Errorf("cli.BasePath = %q, want %q", cli.BasePath, dir)
	}
}

func TestEventLogAdapter(t *testing.T) {
	log, err := observability.NewJSONLEventLog(filepath.Join(t.TempDir(), "events.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = log.Close() }()

	var logger core.EventLogger = &eventLogAdapter{log: log}
	if err := logger.LogEvent("task.created", map[string]any{"task_id": "abcd1234"}); err != nil {
		t.Fatalf("LogEvent: %v", err)
	}

	events, err := log.Read(observability.EventFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.Type != "task.created" || e.Level != observability.LevelInfo || e.TaskID() != "abcd1234" {
		t.Errorf("event = %+v", e)
	}
}

func TestClose_NilEventLog(t *testing.T) {
	app := &App{}
	if err := app.Close(); err != nil {
		t.Errorf("Close with nil event log: %v", err)
	}
}
