//go:build !windows

package execshell

import (
	"context"
	"os/exec"
)

const (
	systemShellPathConstant        = "/bin/sh"
	systemShellCommandFlagConstant = "-c"
)

// newShellCommand hands commandLine to the POSIX shell unchanged.
func newShellCommand(executionContext context.Context, commandLine string) *exec.Cmd {
	return exec.CommandContext(executionContext, systemShellPathConstant, systemShellCommandFlagConstant, commandLine)
}
