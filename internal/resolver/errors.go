package resolver

import (
	"errors"
	"fmt"
)

const (
	commandNotResolvedMessageConstant        = "command not resolved"
	resolutionErrorMessageTemplateConstant   = "unable to resolve the absolute path for the command %q"
	resolutionErrorWithCauseTemplateConstant = "unable to resolve the absolute path for the command %q: %v"
)

// ErrCommandNotResolved is matched by every ResolutionError.
var ErrCommandNotResolved = errors.New(commandNotResolvedMessageConstant)

// ResolutionError reports that a command could not be mapped to an executable file.
type ResolutionError struct {
	Command string
	Cause   error
}

// Error describes the failed resolution.
func (resolutionError ResolutionError) Error() string {
	if resolutionError.Cause != nil {
		return fmt.Sprintf(resolutionErrorWithCauseTemplateConstant, resolutionError.Command, resolutionError.Cause)
	}
	return fmt.Sprintf(resolutionErrorMessageTemplateConstant, resolutionError.Command)
}

// Is reports ErrCommandNotResolved as a match.
func (resolutionError ResolutionError) Is(target error) bool {
	return target == ErrCommandNotResolved
}

// Unwrap exposes the underlying filesystem failure, when one was recorded.
func (resolutionError ResolutionError) Unwrap() error {
	return resolutionError.Cause
}
