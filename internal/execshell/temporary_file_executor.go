package execshell

import (
	"context"
	"errors"
	"os"
)

const (
	standardOutputFilePatternConstant = "execf-stdout-*"
	standardErrorFilePatternConstant  = "execf-stderr-*"
)

// TemporaryFileExecutor runs a command line synchronously with its output streams
// redirected into two temporary files, then reads both files back. The files are
// removed on every exit path.
//
// Output is only read after the child exits, so the executor suits commands with
// modest output; PipeExecutor is preferable for large or interleaved streams.
type TemporaryFileExecutor struct {
	temporaryDirectory string
}

// NewTemporaryFileExecutor creates an executor that writes into os.TempDir.
func NewTemporaryFileExecutor() *TemporaryFileExecutor {
	return &TemporaryFileExecutor{}
}

// NewTemporaryFileExecutorInDirectory creates an executor that writes into directory.
func NewTemporaryFileExecutorInDirectory(directory string) *TemporaryFileExecutor {
	return &TemporaryFileExecutor{temporaryDirectory: directory}
}

// Execute implements CommandExecutor.
func (executor *TemporaryFileExecutor) Execute(executionContext context.Context, commandLine string) (result ExecutionResult, executeError error) {
	standardOutputFile, createError := os.CreateTemp(executor.temporaryDirectory, standardOutputFilePatternConstant)
	if createError != nil {
		return ExecutionResult{}, LaunchError{CommandLine: commandLine, Cause: createError}
	}
	defer releaseTemporaryFile(standardOutputFile, &executeError)

	standardErrorFile, createError := os.CreateTemp(executor.temporaryDirectory, standardErrorFilePatternConstant)
	if createError != nil {
		return ExecutionResult{}, LaunchError{CommandLine: commandLine, Cause: createError}
	}
	defer releaseTemporaryFile(standardErrorFile, &executeError)

	command := newShellCommand(executionContext, commandLine)
	command.Stdout = standardOutputFile
	command.Stderr = standardErrorFile

	runError := command.Run()
	exitStatus, exited := exitStatusFromRunError(runError)
	if !exited {
		return ExecutionResult{}, LaunchError{CommandLine: commandLine, Cause: runError}
	}

	standardOutput, readError := os.ReadFile(standardOutputFile.Name())
	if readError != nil {
		return ExecutionResult{}, CaptureError{CommandLine: commandLine, Cause: readError}
	}

	standardError, readError := os.ReadFile(standardErrorFile.Name())
	if readError != nil {
		return ExecutionResult{}, CaptureError{CommandLine: commandLine, Cause: readError}
	}

	return NewExecutionResult(exitStatus, string(standardOutput), string(standardError)), nil
}

// releaseTemporaryFile closes and removes file, recording a removal failure only
// when no earlier error is being returned.
func releaseTemporaryFile(file *os.File, executeError *error) {
	_ = file.Close()
	removeError := os.Remove(file.Name())
	if removeError == nil || errors.Is(removeError, os.ErrNotExist) {
		return
	}
	if *executeError == nil {
		*executeError = removeError
	}
}
