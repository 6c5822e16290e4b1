package cli

import (
	"errors"

	"github.com/temirov/execf/internal/execshell"
	"github.com/temirov/execf/internal/resolver"
	"github.com/temirov/execf/internal/shell"
)

// Process exit statuses reported by execf.
const (
	ExitCodeSuccess         = 0
	ExitCodeGeneralFailure  = 1
	ExitCodeNotResolved     = 3
	ExitCodeLaunchFailed    = 4
	ExitCodeInvalidArgument = 5
	maximumExitCodeConstant = 255
)

// ExitCode maps an error returned by Execute to a process exit status. A
// ShellFailure exits with the child's status, clamped to 1..255, so a child
// exiting 3, 4 or 5 shares a status with execf's own failures; the message
// printed to stderr names the failed command in that case.
func ExitCode(executionError error) int {
	if executionError == nil {
		return ExitCodeSuccess
	}

	var shellFailure shell.ShellFailure
	switch {
	case errors.As(executionError, &shellFailure):
		return clampExitStatus(shellFailure.ExecutionResult().ExitStatus)
	case errors.Is(executionError, resolver.ErrCommandNotResolved):
		return ExitCodeNotResolved
	case errors.Is(executionError, execshell.ErrLaunchFailed):
		return ExitCodeLaunchFailed
	case errors.Is(executionError, shell.ErrInvalidArgument):
		return ExitCodeInvalidArgument
	default:
		return ExitCodeGeneralFailure
	}
}

func clampExitStatus(exitStatus int) int {
	if exitStatus < ExitCodeGeneralFailure {
		return ExitCodeGeneralFailure
	}
	if exitStatus > maximumExitCodeConstant {
		return maximumExitCodeConstant
	}
	return exitStatus
}
