package models

// StorageConfig names the collection files, relative to the data directory
// unless absolute.
type StorageConfig struct {
	ActiveFile    string `yaml:"active_file" mapstructure:"active_file"`
	CompletedFile string `yaml:"completed_file" mapstructure:"completed_file"`
}

// NotesConfig controls how note entries are stamped.
type NotesConfig struct {
	TimestampFormat string `yaml:"timestamp_format" mapstructure:"timestamp_format"`
}

// TaskIDConfig controls generated task identifiers.
type TaskIDConfig struct {
	Length int `yaml:"length" mapstructure:"length"`
}

// EventsConfig controls the JSONL event log.
type EventsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	File    string `yaml:"file" mapstructure:"file"`
}

// GlobalConfig holds settings read from config.yaml in the data directory via Viper.
type GlobalConfig struct {
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`
	Notes   NotesConfig   `yaml:"notes" mapstructure:"notes"`
	TaskID  TaskIDConfig  `yaml:"task_id" mapstructure:"task_id"`
	Events  EventsConfig  `yaml:"events" mapstructure:"events"`
}
