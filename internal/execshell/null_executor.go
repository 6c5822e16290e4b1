package execshell

import "context"

// NullExecutorFailureCommandLine is the command line for which NullExecutor reports failure.
const NullExecutorFailureCommandLine = "false"

const nullExecutorFailureExitStatusConstant = 1

// NullExecutor never runs anything. It reports exit status 1 for the exact command
// line NullExecutorFailureCommandLine and 0 otherwise, both with empty output.
type NullExecutor struct{}

// NewNullExecutor creates a no-op executor.
func NewNullExecutor() *NullExecutor {
	return &NullExecutor{}
}

// Execute implements CommandExecutor.
func (executor *NullExecutor) Execute(_ context.Context, commandLine string) (ExecutionResult, error) {
	exitStatus := successfulExitStatusConstant
	if commandLine == NullExecutorFailureCommandLine {
		exitStatus = nullExecutorFailureExitStatusConstant
	}
	return NewExecutionResult(exitStatus, "", ""), nil
}
