package shell

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/temirov/execf/internal/execshell"
	"github.com/temirov/execf/internal/resolver"
)

const (
	commandPathVerbConstant          = "%s"
	commandTemplateSeparatorConstant = " "
	commandExecutedMessageConstant   = "command executed"
	logFieldCommandLineConstant      = "command_line"
	logFieldElapsedSecondsConstant   = "elapsed_seconds"
	logFieldExitStatusConstant       = "exit_status"
	elapsedSecondsFormatConstant     = 'f'
	elapsedSecondsPrecisionConstant  = 3
	elapsedSecondsBitSizeConstant    = 64
	successfulExitStatusConstant     = 0
)

// CommandLine is an assembled, fully quoted command line ready for execution.
type CommandLine struct {
	// ResolvedPath is the unquoted absolute path of the executable.
	ResolvedPath string `json:"resolved_path" yaml:"resolved_path"`
	// Text is the command line handed to the executor.
	Text string `json:"command_line" yaml:"command_line"`
}

// Dependencies configures a Shell. Every field is optional.
type Dependencies struct {
	Logger   *zap.Logger
	Resolver resolver.CommandResolver
	Executor execshell.CommandExecutor
	Quoter   ArgumentQuoter
}

// Shell executes commands from printf-style argument templates.
type Shell struct {
	logger          *zap.Logger
	resolver        resolver.CommandResolver
	executor        execshell.CommandExecutor
	quoter          ArgumentQuoter
	failOnErrorExit atomic.Bool
}

type familyReporter interface {
	Family() resolver.OperatingSystemFamily
}

// NewShell builds a Shell. A nil logger discards events, a nil resolver searches
// PATH, a nil executor uses pipes, and a nil quoter follows the resolver's
// operating system family.
func NewShell(dependencies Dependencies) *Shell {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	commandResolver := dependencies.Resolver
	if commandResolver == nil {
		commandResolver = resolver.NewPathEnvironmentResolver()
	}

	executor := dependencies.Executor
	if executor == nil {
		executor = execshell.NewPipeExecutor()
	}

	quoter := dependencies.Quoter
	if quoter == nil {
		family := resolver.DetectOperatingSystemFamily(runtime.GOOS)
		if reporter, reportsFamily := commandResolver.(familyReporter); reportsFamily {
			family = reporter.Family()
		}
		quoter = NewArgumentQuoter(family)
	}

	return &Shell{
		logger:   logger,
		resolver: commandResolver,
		executor: executor,
		quoter:   quoter,
	}
}

// SetFailOnErrorExit controls whether a nonzero exit status is returned as a
// ShellFailure. It may be changed between calls.
func (shell *Shell) SetFailOnErrorExit(enabled bool) *Shell {
	shell.failOnErrorExit.Store(enabled)
	return shell
}

// FailOnErrorExit reports the current error exit mode.
func (shell *Shell) FailOnErrorExit() bool {
	return shell.failOnErrorExit.Load()
}

// ExecuteFormatted runs command with arguments interpolated into argTemplate.
func (shell *Shell) ExecuteFormatted(executionContext context.Context, command string, argTemplate string, arguments ...any) (execshell.ExecutionResult, error) {
	return shell.ExecuteFormattedList(executionContext, command, argTemplate, arguments)
}

// ExecuteFormattedList runs command with arguments interpolated into argTemplate.
//
// argTemplate is trusted format text and is never escaped; it must contain one
// %s or %v verb per argument. Every argument must be a scalar. Resolution and
// argument errors are returned before anything is executed.
func (shell *Shell) ExecuteFormattedList(executionContext context.Context, command string, argTemplate string, arguments []any) (execshell.ExecutionResult, error) {
	commandLine, assembleError := shell.AssembleCommandLine(command, argTemplate, arguments)
	if assembleError != nil {
		return execshell.ExecutionResult{}, assembleError
	}

	startTime := time.Now()
	result, executeError := shell.executor.Execute(executionContext, commandLine.Text)
	if executeError != nil {
		return execshell.ExecutionResult{}, executeError
	}
	elapsed := time.Since(startTime)

	shell.logger.Info(
		commandExecutedMessageConstant,
		zap.String(logFieldCommandLineConstant, commandLine.Text),
		zap.String(logFieldElapsedSecondsConstant, formatElapsedSeconds(elapsed)),
		zap.Int(logFieldExitStatusConstant, result.ExitStatus),
	)

	if shell.FailOnErrorExit() && result.ExitStatus != successfulExitStatusConstant {
		return result, newShellFailure(commandLine.ResolvedPath, result)
	}

	return result, nil
}

// AssembleCommandLine resolves command and quotes it with arguments into the
// command line ExecuteFormattedList would run, without running it.
func (shell *Shell) AssembleCommandLine(command string, argTemplate string, arguments []any) (CommandLine, error) {
	resolvedPath, resolveError := shell.resolver.ResolveCommand(command)
	if resolveError != nil {
		return CommandLine{}, resolveError
	}

	coercedArguments, coerceError := coerceArguments(arguments)
	if coerceError != nil {
		return CommandLine{}, coerceError
	}

	if templateError := validateTemplate(argTemplate, len(coercedArguments)); templateError != nil {
		return CommandLine{}, templateError
	}

	quotedValues := make([]any, 0, len(coercedArguments)+1)
	quotedValues = append(quotedValues, shell.quoter.Quote(resolvedPath))
	for _, coercedArgument := range coercedArguments {
		quotedValues = append(quotedValues, shell.quoter.Quote(coercedArgument))
	}

	commandFormat := commandPathVerbConstant
	if len(argTemplate) > 0 {
		commandFormat += commandTemplateSeparatorConstant + argTemplate
	}

	return CommandLine{
		ResolvedPath: resolvedPath,
		Text:         fmt.Sprintf(commandFormat, quotedValues...),
	}, nil
}

func formatElapsedSeconds(elapsed time.Duration) string {
	return strconv.FormatFloat(elapsed.Seconds(), elapsedSecondsFormatConstant, elapsedSecondsPrecisionConstant, elapsedSecondsBitSizeConstant)
}
