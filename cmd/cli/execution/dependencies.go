package execution

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/execf/internal/execshell"
	"github.com/temirov/execf/internal/resolver"
	"github.com/temirov/execf/internal/ui"
	"github.com/temirov/execf/internal/utils/flags"
)

const (
	templateFlagNameConstant              = "template"
	templateFlagShorthandConstant         = "t"
	templateFlagUsageConstant             = "Argument template with one %s or %v per argument (default: every argument separated by a space)"
	outputFlagNameConstant                = "output"
	outputFlagShorthandConstant           = "o"
	outputFlagUsageConstant               = "Output format."
	defaultTemplateVerbConstant           = "%s"
	defaultTemplateSeparatorConstant      = " "
	executorCreationErrorTemplateConstant = "unable to create %s executor: %w"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ExecutorFactory builds the executor for a backend.
type ExecutorFactory func(kind execshell.ExecutorKind) (execshell.CommandExecutor, error)

// CommandResolver resolves command names and exposes the directories it searches.
type CommandResolver interface {
	resolver.CommandResolver
	SearchPath() []string
}

// CommandDependencies are shared by the execution commands. Every field is optional.
type CommandDependencies struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	Resolver              CommandResolver
	ExecutorFactory       ExecutorFactory
}

func (dependencies CommandDependencies) resolveLogger() *zap.Logger {
	if dependencies.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := dependencies.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (dependencies CommandDependencies) resolveConfiguration() CommandConfiguration {
	if dependencies.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return dependencies.ConfigurationProvider().sanitize()
}

func (dependencies CommandDependencies) resolveResolver() CommandResolver {
	if dependencies.Resolver == nil {
		return resolver.NewPathEnvironmentResolver()
	}
	return dependencies.Resolver
}

func (dependencies CommandDependencies) resolveExecutor(kind execshell.ExecutorKind) (execshell.CommandExecutor, error) {
	factory := dependencies.ExecutorFactory
	if factory == nil {
		factory = execshell.NewCommandExecutor
	}
	executor, creationError := factory(kind)
	if creationError != nil {
		return nil, fmt.Errorf(executorCreationErrorTemplateConstant, kind, creationError)
	}
	return executor, nil
}

func bindOutputFlag(command *cobra.Command) {
	formatNames := make([]string, 0, len(ui.OutputFormats()))
	for _, format := range ui.OutputFormats() {
		formatNames = append(formatNames, string(format))
	}
	flags.BindChoiceFlag(command.Flags(), flags.ChoiceFlagDefinition{
		Name:          outputFlagNameConstant,
		Shorthand:     outputFlagShorthandConstant,
		Usage:         outputFlagUsageConstant,
		DefaultChoice: string(DefaultCommandConfiguration().Output),
		Choices:       formatNames,
	})
}

func bindTemplateFlag(command *cobra.Command) {
	command.Flags().StringP(templateFlagNameConstant, templateFlagShorthandConstant, "", templateFlagUsageConstant)
}

// resolveOutputFormat prefers an explicit flag over configuration.
func resolveOutputFormat(command *cobra.Command, configuration CommandConfiguration) (ui.OutputFormat, error) {
	if !command.Flags().Changed(outputFlagNameConstant) {
		return configuration.Output, nil
	}
	return ui.ParseOutputFormat(lookupFlagValue(command, outputFlagNameConstant))
}

// resolveArgumentTemplate returns the --template value, or one verb per
// argument separated by spaces when the flag is absent.
func resolveArgumentTemplate(command *cobra.Command, argumentCount int) string {
	if command.Flags().Changed(templateFlagNameConstant) {
		argumentTemplate, _ := command.Flags().GetString(templateFlagNameConstant)
		return argumentTemplate
	}
	verbs := make([]string, argumentCount)
	for verbIndex := range verbs {
		verbs[verbIndex] = defaultTemplateVerbConstant
	}
	return strings.Join(verbs, defaultTemplateSeparatorConstant)
}

func lookupFlagValue(command *cobra.Command, flagName string) string {
	flag := command.Flags().Lookup(flagName)
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

func commandArguments(arguments []string) []any {
	converted := make([]any, 0, len(arguments))
	for _, argument := range arguments {
		converted = append(converted, argument)
	}
	return converted
}
