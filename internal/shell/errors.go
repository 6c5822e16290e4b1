package shell

import (
	"errors"
	"fmt"

	"github.com/temirov/execf/internal/execshell"
)

const (
	invalidArgumentMessageConstant                     = "invalid argument"
	commandFailedMessageConstant                       = "command failed"
	nonScalarArgumentReasonTemplateConstant            = "argument %d has non-scalar type %T; arguments must be strings, numbers, or booleans"
	invalidArgumentErrorTemplateConstant               = "invalid argument: %s"
	shellFailureMessageTemplateConstant                = "command \"%s\" failed with status %d"
	argumentCountMismatchReasonTemplateConstant        = "template %q expects %d arguments but %d were supplied"
	unsupportedTemplateVerbReasonTemplateConstant      = "template %q uses unsupported verb %q; only %%s and %%v are accepted"
	unterminatedTemplateVerbReasonTemplateConstant     = "template %q ends with an incomplete verb"
	unsupportedTemplateDirectiveReasonTemplateConstant = "template %q uses directive %q; only '-' and a width may precede %%s or %%v"
)

var (
	// ErrInvalidArgument is matched by every InvalidArgumentError.
	ErrInvalidArgument = errors.New(invalidArgumentMessageConstant)
	// ErrCommandFailed is matched by every ShellFailure.
	ErrCommandFailed   = errors.New(commandFailedMessageConstant)
)

// InvalidArgumentError reports a programming error in the arguments or template
// supplied to the front end. It is always returned before any process starts.
type InvalidArgumentError struct {
	Reason string
}

// Error describes the rejected input.
func (invalidArgumentError InvalidArgumentError) Error() string {
	return fmt.Sprintf(invalidArgumentErrorTemplateConstant, invalidArgumentError.Reason)
}

// Is reports ErrInvalidArgument as a match.
func (invalidArgumentError InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ShellFailure is returned when failing on error exits is enabled and a command
// exits nonzero. Result holds the complete outcome of the failed command.
type ShellFailure struct {
	Message string
	Result  execshell.ExecutionResult
}

func newShellFailure(resolvedPath string, result execshell.ExecutionResult) ShellFailure {
	return ShellFailure{
		Message: fmt.Sprintf(shellFailureMessageTemplateConstant, resolvedPath, result.ExitStatus),
		Result:  result,
	}
}

// Error returns the failure message.
func (shellFailure ShellFailure) Error() string {
	return shellFailure.Message
}

// Is reports ErrCommandFailed as a match.
func (shellFailure ShellFailure) Is(target error) bool {
	return target == ErrCommandFailed
}

// ExecutionResult returns the result attached to the failure.
func (shellFailure ShellFailure) ExecutionResult() execshell.ExecutionResult {
	return shellFailure.Result
}
