package execshell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/execf/internal/execshell"
)

func TestParseExecutorKind(testInstance *testing.T) {
	testCases := []struct {
		name         string
		rawKind      string
		expectedKind execshell.ExecutorKind
		expectError  bool
	}{
		{name: "pipe", rawKind: "pipe", expectedKind: execshell.ExecutorKindPipe},
		{name: "tempfile_mixed_case", rawKind: " TempFile ", expectedKind: execshell.ExecutorKindTemporaryFile},
		{name: "null", rawKind: "null", expectedKind: execshell.ExecutorKindNull},
		{name: "unknown", rawKind: "exec", expectError: true},
		{name: "empty", rawKind: "", expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			kind, parseError := execshell.ParseExecutorKind(testCase.rawKind)
			if testCase.expectError {
				require.ErrorIs(testInstance, parseError, execshell.ErrUnsupportedExecutorKind)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedKind, kind)
		})
	}
}

func TestNewCommandExecutorSelectsImplementation(testInstance *testing.T) {
	testCases := []struct {
		kind         execshell.ExecutorKind
		expectedType execshell.CommandExecutor
	}{
		{kind: execshell.ExecutorKindTemporaryFile, expectedType: &execshell.TemporaryFileExecutor{}},
		{kind: execshell.ExecutorKindPipe, expectedType: &execshell.PipeExecutor{}},
		{kind: execshell.ExecutorKindNull, expectedType: &execshell.NullExecutor{}},
	}

	for _, testCase := range testCases {
		testInstance.Run(string(testCase.kind), func(testInstance *testing.T) {
			executor, creationError := execshell.NewCommandExecutor(testCase.kind)
			require.NoError(testInstance, creationError)
			require.IsType(testInstance, testCase.expectedType, executor)
		})
	}

	_, creationError := execshell.NewCommandExecutor(execshell.ExecutorKind("fork"))
	require.ErrorIs(testInstance, creationError, execshell.ErrUnsupportedExecutorKind)
}

func TestExecutorKindUnmarshalText(testInstance *testing.T) {
	var kind execshell.ExecutorKind
	require.NoError(testInstance, kind.UnmarshalText([]byte("TEMPFILE")))
	require.Equal(testInstance, execshell.ExecutorKindTemporaryFile, kind)
	require.Equal(testInstance, "tempfile", kind.String())

	unmarshalError := kind.UnmarshalText([]byte("daemon"))
	require.ErrorIs(testInstance, unmarshalError, execshell.ErrUnsupportedExecutorKind)
	require.Equal(testInstance, execshell.ExecutorKindTemporaryFile, kind)
}
