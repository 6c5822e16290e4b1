package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/execf/internal/execshell"
	"github.com/temirov/execf/internal/shell"
	"github.com/temirov/execf/internal/ui"
)

const (
	testStandardOutputConstant = "line one\nline two\n"
	testStandardErrorConstant  = "warning: partial\n"
	testResolvedPathConstant   = "/usr/bin/printf"
	testCommandLineConstant    = "/usr/bin/printf 'a b'"
)

func TestParseOutputFormat(testInstance *testing.T) {
	testCases := []struct {
		name           string
		rawFormat      string
		expectedFormat ui.OutputFormat
		expectError    bool
	}{
		{name: "text", rawFormat: "text", expectedFormat: ui.OutputFormatText},
		{name: "yaml_upper", rawFormat: " YAML", expectedFormat: ui.OutputFormatYAML},
		{name: "json", rawFormat: "json", expectedFormat: ui.OutputFormatJSON},
		{name: "unknown", rawFormat: "xml", expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			format, parseError := ui.ParseOutputFormat(testCase.rawFormat)
			if testCase.expectError {
				require.ErrorIs(testInstance, parseError, ui.ErrUnsupportedOutputFormat)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedFormat, format)

			var unmarshalledFormat ui.OutputFormat
			require.NoError(testInstance, unmarshalledFormat.UnmarshalText([]byte(testCase.rawFormat)))
			require.Equal(testInstance, testCase.expectedFormat, unmarshalledFormat)
		})
	}
}

func TestPresentExecutionResultText(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	presenter := ui.NewResultPresenter(outputBuffer, errorBuffer)

	result := execshell.NewExecutionResult(1, testStandardOutputConstant, testStandardErrorConstant)
	require.NoError(testInstance, presenter.PresentExecutionResult(result, ui.OutputFormatText))
	require.Equal(testInstance, testStandardOutputConstant, outputBuffer.String())
	require.Equal(testInstance, testStandardErrorConstant, errorBuffer.String())
}

func TestPresentExecutionResultStructured(testInstance *testing.T) {
	result := execshell.NewExecutionResult(3, testStandardOutputConstant, testStandardErrorConstant)

	testCases := []struct {
		name   string
		format ui.OutputFormat
		decode func(data []byte, target any) error
	}{
		{name: "yaml", format: ui.OutputFormatYAML, decode: yaml.Unmarshal},
		{name: "json", format: ui.OutputFormatJSON, decode: json.Unmarshal},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			outputBuffer := &bytes.Buffer{}
			errorBuffer := &bytes.Buffer{}
			presenter := ui.NewResultPresenter(outputBuffer, errorBuffer)

			require.NoError(testInstance, presenter.PresentExecutionResult(result, testCase.format))
			require.Empty(testInstance, errorBuffer.String())
			require.Contains(testInstance, outputBuffer.String(), "exit_status")

			decoded := execshell.ExecutionResult{}
			require.NoError(testInstance, testCase.decode(outputBuffer.Bytes(), &decoded))
			require.Equal(testInstance, result, decoded)
		})
	}
}

func TestPresentCommandLine(testInstance *testing.T) {
	commandLine := shell.CommandLine{ResolvedPath: testResolvedPathConstant, Text: testCommandLineConstant}

	outputBuffer := &bytes.Buffer{}
	presenter := ui.NewResultPresenter(outputBuffer, nil)
	require.NoError(testInstance, presenter.PresentCommandLine(commandLine, ui.OutputFormatText))
	require.Equal(testInstance, testCommandLineConstant+"\n", outputBuffer.String())

	outputBuffer.Reset()
	require.NoError(testInstance, presenter.PresentCommandLine(commandLine, ui.OutputFormatJSON))
	decoded := map[string]string{}
	require.NoError(testInstance, json.Unmarshal(outputBuffer.Bytes(), &decoded))
	require.Equal(testInstance, map[string]string{"resolved_path": testResolvedPathConstant, "command_line": testCommandLineConstant}, decoded)
}

func TestPresentResolvedCommandAndSearchPath(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	presenter := ui.NewResultPresenter(outputBuffer, nil)

	require.NoError(testInstance, presenter.PresentResolvedCommand("printf", testResolvedPathConstant, ui.OutputFormatText))
	require.Equal(testInstance, testResolvedPathConstant+"\n", outputBuffer.String())

	outputBuffer.Reset()
	require.NoError(testInstance, presenter.PresentSearchPath([]string{"/usr/local/bin", "/usr/bin"}, ui.OutputFormatText))
	require.Equal(testInstance, "/usr/local/bin\n/usr/bin\n", outputBuffer.String())

	outputBuffer.Reset()
	require.NoError(testInstance, presenter.PresentSearchPath([]string{"/usr/local/bin", "/usr/bin"}, ui.OutputFormatYAML))
	require.Equal(testInstance, "search_path:\n  - /usr/local/bin\n  - /usr/bin\n", outputBuffer.String())
}

func TestPresentRejectsUnknownFormat(testInstance *testing.T) {
	presenter := ui.NewResultPresenter(&bytes.Buffer{}, &bytes.Buffer{})
	presentError := presenter.PresentExecutionResult(execshell.ExecutionResult{}, ui.OutputFormat("xml"))
	require.ErrorIs(testInstance, presentError, ui.ErrUnsupportedOutputFormat)
}
