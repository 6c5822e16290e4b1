package execshell

import (
	"bytes"
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// PipeExecutor spawns the command line with piped standard streams. Standard
// input is closed immediately; standard output and standard error are drained
// concurrently so a child filling one pipe cannot stall on the other.
type PipeExecutor struct{}

// NewPipeExecutor creates a pipe-capturing executor.
func NewPipeExecutor() *PipeExecutor {
	return &PipeExecutor{}
}

// Execute implements CommandExecutor.
func (executor *PipeExecutor) Execute(executionContext context.Context, commandLine string) (ExecutionResult, error) {
	command := newShellCommand(executionContext, commandLine)

	standardInput, pipeError := command.StdinPipe()
	if pipeError != nil {
		return ExecutionResult{}, LaunchError{CommandLine: commandLine, Cause: pipeError}
	}
	standardOutputPipe, pipeError := command.StdoutPipe()
	if pipeError != nil {
		return ExecutionResult{}, LaunchError{CommandLine: commandLine, Cause: pipeError}
	}
	standardErrorPipe, pipeError := command.StderrPipe()
	if pipeError != nil {
		return ExecutionResult{}, LaunchError{CommandLine: commandLine, Cause: pipeError}
	}

	if startError := command.Start(); startError != nil {
		return ExecutionResult{}, LaunchError{CommandLine: commandLine, Cause: startError}
	}

	_ = standardInput.Close()

	var standardOutputBuffer bytes.Buffer
	var standardErrorBuffer bytes.Buffer
	var drainGroup errgroup.Group
	drainGroup.Go(func() error {
		_, copyError := io.Copy(&standardOutputBuffer, standardOutputPipe)
		return copyError
	})
	drainGroup.Go(func() error {
		_, copyError := io.Copy(&standardErrorBuffer, standardErrorPipe)
		return copyError
	})
	drainError := drainGroup.Wait()

	waitError := command.Wait()
	if drainError != nil {
		return ExecutionResult{}, CaptureError{CommandLine: commandLine, Cause: drainError}
	}

	exitStatus, exited := exitStatusFromRunError(waitError)
	if !exited {
		return ExecutionResult{}, CaptureError{CommandLine: commandLine, Cause: waitError}
	}

	return NewExecutionResult(exitStatus, standardOutputBuffer.String(), standardErrorBuffer.String()), nil
}
