package utils_test

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/execf/internal/utils"
)

func TestFlushingWriterFlushesBufferedOutput(testInstance *testing.T) {
	destination := &bytes.Buffer{}
	bufferedWriter := bufio.NewWriterSize(destination, 4096)

	flushingWriter := utils.NewFlushingWriter(bufferedWriter)
	bytesWritten, writeError := flushingWriter.Write([]byte("exit_status: 0\n"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, 15, bytesWritten)
	require.Equal(testInstance, "exit_status: 0\n", destination.String())
}

func TestNewFlushingWriterWrapsOnce(testInstance *testing.T) {
	require.Nil(testInstance, utils.NewFlushingWriter(nil))

	flushingWriter := utils.NewFlushingWriter(&bytes.Buffer{})
	require.Same(testInstance, flushingWriter, utils.NewFlushingWriter(flushingWriter))
}
