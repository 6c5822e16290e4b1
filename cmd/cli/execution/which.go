package execution

import (
	"github.com/spf13/cobra"

	"github.com/temirov/execf/internal/ui"
)

const (
	whichCommandUseConstant              = "which <command>"
	whichCommandShortDescriptionConstant = "Print the absolute path a command resolves to"
	pathCommandUseConstant               = "path"
	pathCommandShortDescriptionConstant  = "Print the directories searched for commands"
	pathCommandLongDescriptionConstant   = "path prints the search list derived from the PATH environment variable in search order. Empty entries are ignored and the platform default applies when nothing remains."
)

// WhichCommandBuilder assembles the which command.
type WhichCommandBuilder struct {
	CommandDependencies
}

// Build constructs the which command.
func (builder *WhichCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   whichCommandUseConstant,
		Short: whichCommandShortDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}
	bindOutputFlag(command)
	return command, nil
}

func (builder *WhichCommandBuilder) run(command *cobra.Command, arguments []string) error {
	outputFormat, formatError := resolveOutputFormat(command, builder.resolveConfiguration())
	if formatError != nil {
		return formatError
	}

	resolvedPath, resolveError := builder.resolveResolver().ResolveCommand(arguments[0])
	if resolveError != nil {
		return resolveError
	}

	return ui.NewResultPresenter(command.OutOrStdout(), command.ErrOrStderr()).PresentResolvedCommand(arguments[0], resolvedPath, outputFormat)
}

// PathCommandBuilder assembles the path command.
type PathCommandBuilder struct {
	CommandDependencies
}

// Build constructs the path command.
func (builder *PathCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   pathCommandUseConstant,
		Short: pathCommandShortDescriptionConstant,
		Long:  pathCommandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}
	bindOutputFlag(command)
	return command, nil
}

func (builder *PathCommandBuilder) run(command *cobra.Command, _ []string) error {
	outputFormat, formatError := resolveOutputFormat(command, builder.resolveConfiguration())
	if formatError != nil {
		return formatError
	}

	return ui.NewResultPresenter(command.OutOrStdout(), command.ErrOrStderr()).PresentSearchPath(builder.resolveResolver().SearchPath(), outputFormat)
}
