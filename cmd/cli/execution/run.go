package execution

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/temirov/execf/internal/execshell"
	"github.com/temirov/execf/internal/shell"
	"github.com/temirov/execf/internal/ui"
	"github.com/temirov/execf/internal/utils/flags"
)

const (
	runCommandUseConstant              = "run <command> [arguments...]"
	runCommandShortDescriptionConstant = "Resolve a command and execute it through the system shell"
	runCommandLongDescriptionConstant  = "run resolves the command on the search path, quotes every argument for the system shell, executes the assembled command line with the selected backend, and prints the captured result. Flags must precede the command name."
	backendFlagNameConstant            = "backend"
	backendFlagShorthandConstant       = "b"
	backendFlagUsageConstant           = "Execution backend."
	failOnErrorFlagNameConstant        = "fail-on-error"
	failOnErrorFlagUsageConstant       = "Return an error when the command exits with a nonzero status"
)

// RunCommandBuilder assembles the run command.
type RunCommandBuilder struct {
	CommandDependencies
}

// Build constructs the run command.
func (builder *RunCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   runCommandUseConstant,
		Short: runCommandShortDescriptionConstant,
		Long:  runCommandLongDescriptionConstant,
		Args:  cobra.MinimumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().SetInterspersed(false)
	bindTemplateFlag(command)
	bindOutputFlag(command)

	backendNames := make([]string, 0, len(execshell.ExecutorKinds()))
	for _, kind := range execshell.ExecutorKinds() {
		backendNames = append(backendNames, kind.String())
	}
	flags.BindChoiceFlag(command.Flags(), flags.ChoiceFlagDefinition{
		Name:          backendFlagNameConstant,
		Shorthand:     backendFlagShorthandConstant,
		Usage:         backendFlagUsageConstant,
		DefaultChoice: DefaultCommandConfiguration().Backend.String(),
		Choices:       backendNames,
	})
	command.Flags().Bool(failOnErrorFlagNameConstant, false, failOnErrorFlagUsageConstant)

	return command, nil
}

func (builder *RunCommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	backend := configuration.Backend
	if command.Flags().Changed(backendFlagNameConstant) {
		parsedBackend, parseError := execshell.ParseExecutorKind(lookupFlagValue(command, backendFlagNameConstant))
		if parseError != nil {
			return parseError
		}
		backend = parsedBackend
	}

	failOnError := configuration.FailOnError
	if command.Flags().Changed(failOnErrorFlagNameConstant) {
		failOnError, _ = command.Flags().GetBool(failOnErrorFlagNameConstant)
	}

	outputFormat, formatError := resolveOutputFormat(command, configuration)
	if formatError != nil {
		return formatError
	}

	executor, executorError := builder.resolveExecutor(backend)
	if executorError != nil {
		return executorError
	}

	commandShell := shell.NewShell(shell.Dependencies{
		Logger:   builder.resolveLogger(),
		Resolver: builder.resolveResolver(),
		Executor: executor,
	})
	commandShell.SetFailOnErrorExit(failOnError)

	commandName, commandValues := arguments[0], arguments[1:]
	argumentTemplate := resolveArgumentTemplate(command, len(commandValues))

	result, executeError := commandShell.ExecuteFormattedList(command.Context(), commandName, argumentTemplate, commandArguments(commandValues))
	var shellFailure shell.ShellFailure
	if executeError != nil && !errors.As(executeError, &shellFailure) {
		return executeError
	}

	presenter := ui.NewResultPresenter(command.OutOrStdout(), command.ErrOrStderr())
	if presentError := presenter.PresentExecutionResult(result, outputFormat); presentError != nil {
		return presentError
	}

	return executeError
}
