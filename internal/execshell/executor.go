package execshell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const (
	executorKindTemporaryFileConstant       = "tempfile"
	executorKindPipeConstant                = "pipe"
	executorKindNullConstant                = "null"
	unsupportedExecutorKindTemplateConstant = "unsupported executor kind %q (expected one of %s)"
	executorKindListSeparatorConstant       = ", "
	successfulExitStatusConstant            = 0
)

// CommandExecutor runs an already escaped command line through the system shell.
type CommandExecutor interface {
	Execute(executionContext context.Context, commandLine string) (ExecutionResult, error)
}

// ExecutorKind selects one of the built-in CommandExecutor implementations.
type ExecutorKind string

// Supported executor kinds.
const (
	ExecutorKindTemporaryFile ExecutorKind = ExecutorKind(executorKindTemporaryFileConstant)
	ExecutorKindPipe          ExecutorKind = ExecutorKind(executorKindPipeConstant)
	ExecutorKindNull          ExecutorKind = ExecutorKind(executorKindNullConstant)
)

// ErrUnsupportedExecutorKind is returned for unknown executor kind identifiers.
var ErrUnsupportedExecutorKind = errors.New("unsupported executor kind")

// ExecutorKinds lists the supported kinds in presentation order.
func ExecutorKinds() []ExecutorKind {
	return []ExecutorKind{ExecutorKindPipe, ExecutorKindTemporaryFile, ExecutorKindNull}
}

// ParseExecutorKind converts a case-insensitive identifier into an ExecutorKind.
func ParseExecutorKind(rawKind string) (ExecutorKind, error) {
	normalizedKind := ExecutorKind(strings.ToLower(strings.TrimSpace(rawKind)))
	for _, supportedKind := range ExecutorKinds() {
		if normalizedKind == supportedKind {
			return supportedKind, nil
		}
	}
	return "", fmt.Errorf("%w: "+unsupportedExecutorKindTemplateConstant, ErrUnsupportedExecutorKind, rawKind, describeExecutorKinds())
}

// String returns the identifier of kind.
func (kind ExecutorKind) String() string {
	return string(kind)
}

// UnmarshalText parses configuration and flag values into a supported kind.
func (kind *ExecutorKind) UnmarshalText(text []byte) error {
	parsedKind, parseError := ParseExecutorKind(string(text))
	if parseError != nil {
		return parseError
	}
	*kind = parsedKind
	return nil
}

// NewCommandExecutor builds the executor registered for kind.
func NewCommandExecutor(kind ExecutorKind) (CommandExecutor, error) {
	switch kind {
	case ExecutorKindTemporaryFile:
		return NewTemporaryFileExecutor(), nil
	case ExecutorKindPipe:
		return NewPipeExecutor(), nil
	case ExecutorKindNull:
		return NewNullExecutor(), nil
	default:
		return nil, fmt.Errorf("%w: "+unsupportedExecutorKindTemplateConstant, ErrUnsupportedExecutorKind, string(kind), describeExecutorKinds())
	}
}

func describeExecutorKinds() string {
	kindNames := make([]string, 0, len(ExecutorKinds()))
	for _, kind := range ExecutorKinds() {
		kindNames = append(kindNames, string(kind))
	}
	return strings.Join(kindNames, executorKindListSeparatorConstant)
}

// exitStatusFromRunError separates a child's nonzero exit from a failure to run it.
func exitStatusFromRunError(runError error) (int, bool) {
	if runError == nil {
		return successfulExitStatusConstant, true
	}
	exitError := &exec.ExitError{}
	if errors.As(runError, &exitError) {
		return exitError.ExitCode(), true
	}
	return 0, false
}
