// Package execution builds the execf commands that resolve, assemble, and run
// command lines: run, line, which, and path.
package execution
