// Package cli constructs the execf command-line interface, wiring the Cobra
// command hierarchy, configuration loader, and structured logging. ExitCode
// maps the errors returned by Execute to process exit statuses.
package cli
