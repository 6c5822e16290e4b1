package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/temirov/execf/internal/execshell"
	"github.com/temirov/execf/internal/shell"
	"github.com/temirov/execf/internal/utils"
)

const (
	outputFormatTextConstant                = "text"
	outputFormatYAMLConstant                = "yaml"
	outputFormatJSONConstant                = "json"
	unsupportedOutputFormatTemplateConstant = "%w %q (expected one of %s)"
	outputFormatListSeparatorConstant       = ", "
	yamlIndentationConstant                 = 2
	jsonIndentationConstant                 = "  "
	lineTerminatorConstant                  = "\n"
	encodeResultErrorTemplateConstant       = "unable to render %s output: %w"
)

// ErrUnsupportedOutputFormat is returned for unknown output format identifiers.
var ErrUnsupportedOutputFormat = errors.New("unsupported output format")

// OutputFormat selects how results are rendered.
type OutputFormat string

// Supported output formats.
const (
	OutputFormatText OutputFormat = OutputFormat(outputFormatTextConstant)
	OutputFormatYAML OutputFormat = OutputFormat(outputFormatYAMLConstant)
	OutputFormatJSON OutputFormat = OutputFormat(outputFormatJSONConstant)
)

// OutputFormats lists the supported formats in presentation order.
func OutputFormats() []OutputFormat {
	return []OutputFormat{OutputFormatText, OutputFormatYAML, OutputFormatJSON}
}

// ParseOutputFormat converts a case-insensitive identifier into an OutputFormat.
func ParseOutputFormat(rawFormat string) (OutputFormat, error) {
	normalizedFormat := OutputFormat(strings.ToLower(strings.TrimSpace(rawFormat)))
	formatNames := make([]string, 0, len(OutputFormats()))
	for _, supportedFormat := range OutputFormats() {
		if normalizedFormat == supportedFormat {
			return supportedFormat, nil
		}
		formatNames = append(formatNames, string(supportedFormat))
	}
	return "", fmt.Errorf(unsupportedOutputFormatTemplateConstant, ErrUnsupportedOutputFormat, rawFormat, strings.Join(formatNames, outputFormatListSeparatorConstant))
}

// UnmarshalText parses configuration and flag values into a supported format.
func (format *OutputFormat) UnmarshalText(text []byte) error {
	parsedFormat, parseError := ParseOutputFormat(string(text))
	if parseError != nil {
		return parseError
	}
	*format = parsedFormat
	return nil
}

type searchPathDocument struct {
	SearchPath []string `json:"search_path" yaml:"search_path"`
}

type resolvedCommandDocument struct {
	Command      string `json:"command" yaml:"command"`
	ResolvedPath string `json:"resolved_path" yaml:"resolved_path"`
}

// ResultPresenter writes rendered output to a command's output and error streams.
type ResultPresenter struct {
	outputWriter io.Writer
	errorWriter  io.Writer
}

// NewResultPresenter wraps both streams so each write is flushed.
func NewResultPresenter(outputWriter io.Writer, errorWriter io.Writer) *ResultPresenter {
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	if errorWriter == nil {
		errorWriter = io.Discard
	}
	return &ResultPresenter{
		outputWriter: utils.NewFlushingWriter(outputWriter),
		errorWriter:  utils.NewFlushingWriter(errorWriter),
	}
}

// PresentExecutionResult renders result. Text output copies the child's captured
// streams unchanged; structured formats emit exit_status, stdout and stderr.
func (presenter *ResultPresenter) PresentExecutionResult(result execshell.ExecutionResult, format OutputFormat) error {
	if format != OutputFormatText {
		return presenter.encodeStructured(result, format)
	}

	if _, writeError := io.WriteString(presenter.outputWriter, result.StandardOutput); writeError != nil {
		return writeError
	}
	_, writeError := io.WriteString(presenter.errorWriter, result.StandardError)
	return writeError
}

// PresentCommandLine renders an assembled command line without running it.
func (presenter *ResultPresenter) PresentCommandLine(commandLine shell.CommandLine, format OutputFormat) error {
	if format != OutputFormatText {
		return presenter.encodeStructured(commandLine, format)
	}
	_, writeError := io.WriteString(presenter.outputWriter, commandLine.Text+lineTerminatorConstant)
	return writeError
}

// PresentResolvedCommand renders the absolute path command resolved to.
func (presenter *ResultPresenter) PresentResolvedCommand(command string, resolvedPath string, format OutputFormat) error {
	if format != OutputFormatText {
		return presenter.encodeStructured(resolvedCommandDocument{Command: command, ResolvedPath: resolvedPath}, format)
	}
	_, writeError := io.WriteString(presenter.outputWriter, resolvedPath+lineTerminatorConstant)
	return writeError
}

// PresentSearchPath renders the resolver's search directories, one per line in text form.
func (presenter *ResultPresenter) PresentSearchPath(searchPath []string, format OutputFormat) error {
	if format != OutputFormatText {
		return presenter.encodeStructured(searchPathDocument{SearchPath: searchPath}, format)
	}
	for _, directory := range searchPath {
		if _, writeError := io.WriteString(presenter.outputWriter, directory+lineTerminatorConstant); writeError != nil {
			return writeError
		}
	}
	return nil
}

func (presenter *ResultPresenter) encodeStructured(document any, format OutputFormat) error {
	switch format {
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(presenter.outputWriter)
		encoder.SetIndent(yamlIndentationConstant)
		if encodeError := encoder.Encode(document); encodeError != nil {
			return fmt.Errorf(encodeResultErrorTemplateConstant, format, encodeError)
		}
		return encoder.Close()
	case OutputFormatJSON:
		encoder := json.NewEncoder(presenter.outputWriter)
		encoder.SetIndent("", jsonIndentationConstant)
		if encodeError := encoder.Encode(document); encodeError != nil {
			return fmt.Errorf(encodeResultErrorTemplateConstant, format, encodeError)
		}
		return nil
	default:
		_, parseError := ParseOutputFormat(string(format))
		return parseError
	}
}
