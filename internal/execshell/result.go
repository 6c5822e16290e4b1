package execshell

// ExecutionResult captures the observable outcome of one executed command line.
// Output fields hold the exact bytes written by the child process.
type ExecutionResult struct {
	ExitStatus     int    `json:"exit_status" yaml:"exit_status"`
	StandardOutput string `json:"stdout" yaml:"stdout"`
	StandardError  string `json:"stderr" yaml:"stderr"`
}

// NewExecutionResult builds a result from its three components.
func NewExecutionResult(exitStatus int, standardOutput string, standardError string) ExecutionResult {
	return ExecutionResult{
		ExitStatus:     exitStatus,
		StandardOutput: standardOutput,
		StandardError:  standardError,
	}
}

// Succeeded reports whether the command exited with status zero.
func (result ExecutionResult) Succeeded() bool {
	return result.ExitStatus == 0
}
