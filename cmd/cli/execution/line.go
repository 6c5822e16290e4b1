package execution

import (
	"github.com/spf13/cobra"

	"github.com/temirov/execf/internal/shell"
	"github.com/temirov/execf/internal/ui"
)

const (
	lineCommandUseConstant              = "line <command> [arguments...]"
	lineCommandShortDescriptionConstant = "Print the command line run would execute"
	lineCommandLongDescriptionConstant  = "line resolves the command and quotes its arguments exactly as run does, then prints the assembled command line without executing it."
)

// LineCommandBuilder assembles the line command.
type LineCommandBuilder struct {
	CommandDependencies
}

// Build constructs the line command.
func (builder *LineCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   lineCommandUseConstant,
		Short: lineCommandShortDescriptionConstant,
		Long:  lineCommandLongDescriptionConstant,
		Args:  cobra.MinimumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().SetInterspersed(false)
	bindTemplateFlag(command)
	bindOutputFlag(command)

	return command, nil
}

func (builder *LineCommandBuilder) run(command *cobra.Command, arguments []string) error {
	outputFormat, formatError := resolveOutputFormat(command, builder.resolveConfiguration())
	if formatError != nil {
		return formatError
	}

	commandShell := shell.NewShell(shell.Dependencies{Resolver: builder.resolveResolver()})

	commandName, commandValues := arguments[0], arguments[1:]
	argumentTemplate := resolveArgumentTemplate(command, len(commandValues))

	commandLine, assembleError := commandShell.AssembleCommandLine(commandName, argumentTemplate, commandArguments(commandValues))
	if assembleError != nil {
		return assembleError
	}

	return ui.NewResultPresenter(command.OutOrStdout(), command.ErrOrStderr()).PresentCommandLine(commandLine, outputFormat)
}
