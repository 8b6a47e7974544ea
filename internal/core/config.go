// Package core contains the business logic for tt: task lifecycle
// handling, identifier generation, note stamping, and configuration.
package core

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

// ConfigFileName is the base name of the configuration file inside the data directory.
const ConfigFileName = "config.yaml"

// ConfigurationManager defines the interface for loading and validating the
// tt configuration and resolving the collection file paths it names.
type ConfigurationManager interface {
	LoadGlobalConfig() (*models.GlobalConfig, error)
	ValidateConfig(cfg *models.GlobalConfig) error
	StorePaths(cfg *models.GlobalConfig) models.StorePaths
	EventLogPath(cfg *models.GlobalConfig) string
	ConfigFilePath() string
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML config file and TT_* environment overrides.
type viperConfigManager struct {
	// basePath is the data directory where config.yaml and the task files reside.
	basePath string
}

// NewConfigurationManager creates a new ConfigurationManager that reads
// configuration relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultGlobalConfig returns a GlobalConfig populated with defaults.
func DefaultGlobalConfig() *models.GlobalConfig {
	return &models.GlobalConfig{
		Storage: models.StorageConfig{
			ActiveFile:    "active-tasks.csv",
			CompletedFile: "completed-tasks.csv",
		},
		Notes: models.NotesConfig{
			TimestampFormat: DefaultTimestampFormat,
		},
		TaskID: models.TaskIDConfig{
			Length: DefaultTaskIDLength,
		},
		Events: models.EventsConfig{
			Enabled: true,
			File:    "events.jsonl",
		},
	}
}

func (cm *viperConfigManager) ConfigFilePath() string {
	return filepath.Join(cm.basePath, ConfigFileName)
}

// LoadGlobalConfig reads config.yaml from the base path using Viper.
// If the file does not exist, defaults (plus any TT_* overrides) are returned.
func (cm *viperConfigManager) LoadGlobalConfig() (*models.GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(ConfigFileName, filepath.Ext(ConfigFileName)))
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)
	v.SetEnvPrefix("TT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("storage.active_file", cfg.Storage.ActiveFile)
	v.SetDefault("storage.completed_file", cfg.Storage.CompletedFile)
	v.SetDefault("notes.timestamp_format", cfg.Notes.TimestampFormat)
	v.SetDefault("task_id.length", cfg.TaskID.Length)
	v.SetDefault("events.enabled", cfg.Events.Enabled)
	v.SetDefault("events.file", cfg.Events.File)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
		}
	}

	cfg.Storage.ActiveFile = v.GetString("storage.active_file")
	cfg.Storage.CompletedFile = v.GetString("storage.completed_file")
	cfg.Notes.TimestampFormat = v.GetString("notes.timestamp_format")
	cfg.TaskID.Length = v.GetInt("task_id.length")
	cfg.Events.Enabled = v.GetBool("events.enabled")
	cfg.Events.File = v.GetString("events.file")

	return cfg, nil
}

// StorePaths resolves the configured collection files against the base path.
func (cm *viperConfigManager) StorePaths(cfg *models.GlobalConfig) models.StorePaths {
	return models.StorePaths{
		Active:    cm.resolve(cfg.Storage.ActiveFile),
		Completed: cm.resolve(cfg.Storage.CompletedFile),
	}
}

// EventLogPath resolves the configured event log file against the base path.
func (cm *viperConfigManager) EventLogPath(cfg *models.GlobalConfig) string {
	return cm.resolve(cfg.Events.File)
}

func (cm *viperConfigManager) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cm.basePath, p)
}

// ValidateConfig checks the configuration for invalid values and reports
// every problem found in a single error.
func (cm *viperConfigManager) ValidateConfig(cfg *models.GlobalConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if strings.TrimSpace(cfg.Storage.ActiveFile) == "" {
		errs = append(errs, "storage.active_file must not be empty")
	}
	if strings.TrimSpace(cfg.Storage.CompletedFile) == "" {
		errs = append(errs, "storage.completed_file must not be empty")
	}
	if cfg.Storage.ActiveFile != "" && cm.resolve(cfg.Storage.ActiveFile) == cm.resolve(cfg.Storage.CompletedFile) {
		errs = append(errs, "storage.active_file and storage.completed_file must differ")
	}

	if cfg.TaskID.Length < minTaskIDLength || cfg.TaskID.Length > maxTaskIDLength {
		errs = append(errs, fmt.Sprintf(
			"task_id.length %d is invalid, must be between %d and %d",
			cfg.TaskID.Length, minTaskIDLength, maxTaskIDLength,
		))
	}

	if cfg.Notes.TimestampFormat == "" {
		errs = append(errs, "notes.timestamp_format must not be empty")
	} else if stamp := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC).Format(cfg.Notes.TimestampFormat); !strings.ContainsAny(stamp, "0123456789") {
		errs = append(errs, fmt.Sprintf(
			"notes.timestamp_format %q contains no date or time fields",
			cfg.Notes.TimestampFormat,
		))
	}

	if cfg.Events.Enabled && strings.TrimSpace(cfg.Events.File) == "" {
		errs = append(errs, "events.file must not be empty when events are enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
