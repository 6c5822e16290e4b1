package main

import (
	"fmt"
	"os"

	"github.com/temirov/execf/cmd/cli"
	"github.com/temirov/execf/internal/ui"
)

const (
	exitErrorTemplateConstant = "%s\n"
)

// main executes the execf command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, ui.FailureMessageFormatter{}.BuildErrorMessage(executionError))
		os.Exit(cli.ExitCode(executionError))
	}
}
