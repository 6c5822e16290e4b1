// Package shell is the printf-style front end for running external commands.
//
// Shell resolves a command to an absolute path, quotes the path and every
// scalar argument exactly once, interpolates them into a trusted argument
// template, and hands the resulting command line to an execshell.CommandExecutor.
// Each execution emits one structured log entry. When configured to fail on
// error exits, a nonzero exit status is returned as a ShellFailure carrying the
// full execution result.
package shell
