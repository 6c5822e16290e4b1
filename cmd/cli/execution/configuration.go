package execution

import (
	"github.com/temirov/execf/internal/execshell"
	"github.com/temirov/execf/internal/ui"
)

const (
	backendConfigurationKeyConstant     = "backend"
	failOnErrorConfigurationKeyConstant = "fail_on_error"
	outputConfigurationKeyConstant      = "output"
	configurationKeySeparatorConstant   = "."
)

// CommandConfiguration captures the execution section of the configuration.
type CommandConfiguration struct {
	Backend     execshell.ExecutorKind `mapstructure:"backend"`
	FailOnError bool                   `mapstructure:"fail_on_error"`
	Output      ui.OutputFormat        `mapstructure:"output"`
}

// DefaultCommandConfiguration runs through pipes, reports nonzero exits as
// results, and prints captured output unchanged.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Backend:     execshell.ExecutorKindPipe,
		FailOnError: false,
		Output:      ui.OutputFormatText,
	}
}

// DefaultConfigurationValues produces Viper defaults for the execution section rooted at rootKey.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + backendConfigurationKeyConstant:     string(defaults.Backend),
		rootKey + configurationKeySeparatorConstant + failOnErrorConfigurationKeyConstant: defaults.FailOnError,
		rootKey + configurationKeySeparatorConstant + outputConfigurationKeyConstant:      string(defaults.Output),
	}
}

// sanitize fills unset values with defaults.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration
	if len(sanitized.Backend) == 0 {
		sanitized.Backend = defaults.Backend
	}
	if len(sanitized.Output) == 0 {
		sanitized.Output = defaults.Output
	}
	return sanitized
}
