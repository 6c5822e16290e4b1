package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/execf/internal/shell"
)

const (
	standardErrorSuffixTemplateConstant = ": %s"
	unknownFailureMessageConstant       = "unknown error"
)

// FailureMessageFormatter builds the messages printed when a command fails.
type FailureMessageFormatter struct{}

// BuildFailureMessage describes a command that exited with a nonzero status,
// followed by its trimmed standard error when there is any.
func (formatter FailureMessageFormatter) BuildFailureMessage(failure shell.ShellFailure) string {
	trimmedStandardError := strings.TrimSpace(failure.ExecutionResult().StandardError)
	if len(trimmedStandardError) == 0 {
		return failure.Error()
	}
	return failure.Error() + fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

// BuildErrorMessage describes any error returned by a command.
func (formatter FailureMessageFormatter) BuildErrorMessage(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	var shellFailure shell.ShellFailure
	if errors.As(failure, &shellFailure) {
		return formatter.BuildFailureMessage(shellFailure)
	}
	return failure.Error()
}
