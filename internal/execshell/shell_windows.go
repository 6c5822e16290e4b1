//go:build windows

package execshell

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

const (
	commandInterpreterEnvironmentKeyConstant = "ComSpec"
	commandInterpreterFallbackConstant       = "cmd.exe"
	commandInterpreterLinePrefixConstant     = "/S /C \""
	commandInterpreterLineSuffixConstant     = "\""
)

// newShellCommand hands commandLine to cmd.exe. The raw command line is set
// directly because os/exec's argument escaping does not match cmd.exe rules.
func newShellCommand(executionContext context.Context, commandLine string) *exec.Cmd {
	interpreter := os.Getenv(commandInterpreterEnvironmentKeyConstant)
	if len(interpreter) == 0 {
		interpreter = commandInterpreterFallbackConstant
	}

	command := exec.CommandContext(executionContext, interpreter)
	command.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: filepath.Base(interpreter) + " " + commandInterpreterLinePrefixConstant + commandLine + commandInterpreterLineSuffixConstant,
	}
	return command
}
