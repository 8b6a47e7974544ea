// Package internal provides the App struct that wires the components of tt
// together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/valter-silva-au/task-tracker/internal/cli"
	"github.com/valter-silva-au/task-tracker/internal/core"
	"github.com/valter-silva-au/task-tracker/internal/observability"
	"github.com/valter-silva-au/task-tracker/internal/storage"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

// HomeEnvVar overrides the data directory.
const HomeEnvVar = "TT_HOME"

// App holds all service dependencies for tt.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager
	Config    *models.GlobalConfig

	// Storage layer
	Store storage.RecordStore

	// Core services
	IDGen   core.TaskIDGenerator
	Notes   *core.NoteAppender
	TaskMgr core.TaskManager

	// Observability
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
}

// NewApp creates and wires all components of tt. basePath is the data
// directory holding config.yaml, the task files, and the event log.
//
// The CLI's base path and configuration manager are wired before config.yaml
// is read, so 'tt config init --force' works even when NewApp fails.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cli.BasePath = basePath
	cli.ConfigMgr = app.ConfigMgr
	globalCfg, err := app.ConfigMgr.LoadGlobalConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := app.ConfigMgr.ValidateConfig(globalCfg); err != nil {
		return nil, err
	}
	app.Config = globalCfg

	// --- Storage layer ---
	app.Store = storage.NewRecordStore(app.ConfigMgr.StorePaths(globalCfg))

	// --- Observability ---
	if globalCfg.Events.Enabled {
		app.EventLog, err = observability.NewJSONLEventLog(app.ConfigMgr.EventLogPath(globalCfg))
		if err != nil {
			// Non-fatal: run without the event log if it can't be opened.
			app.EventLog = nil
		}
	}
	var evtAdapter core.EventLogger
	if app.EventLog != nil {
		evtAdapter = &eventLogAdapter{log: app.EventLog}
		app.MetricsCalc = observability.NewMetricsCalculator(app.EventLog)
	}

	// --- Core services ---
	app.IDGen = core.NewTaskIDGenerator(globalCfg.TaskID.Length)
	app.Notes = core.NewNoteAppender(globalCfg.Notes.TimestampFormat, time.Now)
	app.TaskMgr = core.NewTaskManager(app.Store, app.IDGen, app.Notes, evtAdapter, nil)

	// --- Wire CLI package-level variables ---
	cli.TaskMgr = app.TaskMgr
	cli.Config = app.Config
	cli.MetricsCalc = app.MetricsCalc

	return app, nil
}

// Close releases resources held by the App, such as the event log file handle.
// It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the tt data directory. TT_HOME wins; otherwise
// the user config directory is used, falling back to the current directory.
func ResolveBasePath() string {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return home
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "tt")
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   observability.LevelInfo,
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}
