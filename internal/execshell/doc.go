// Package execshell runs fully assembled shell command lines and captures their
// exit status, standard output, and standard error.
//
// Three interchangeable CommandExecutor implementations are provided:
// TemporaryFileExecutor captures output through temporary files,
// PipeExecutor drains the child's pipes concurrently, and NullExecutor returns
// canned results for tests. Command lines are executed verbatim; quoting is the
// caller's responsibility.
package execshell
