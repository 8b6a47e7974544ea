package cli

import (
	"github.com/valter-silva-au/task-tracker/internal/core"
	"github.com/valter-silva-au/task-tracker/internal/observability"
	"github.com/valter-silva-au/task-tracker/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	BasePath    string
	TaskMgr     core.TaskManager
	ConfigMgr   core.ConfigurationManager
	Config      *models.GlobalConfig
	MetricsCalc observability.MetricsCalculator
)
