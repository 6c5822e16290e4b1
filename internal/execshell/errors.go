package execshell

import (
	"errors"
	"fmt"
)

const (
	launchFailedMessageConstant         = "process launch failed"
	captureFailedMessageConstant        = "output capture failed"
	launchErrorMessageTemplateConstant  = "unable to start %q: %v"
	captureErrorMessageTemplateConstant = "unable to capture output of %q: %v"
)

var (
	// ErrLaunchFailed is matched by every LaunchError.
	ErrLaunchFailed  = errors.New(launchFailedMessageConstant)
	// ErrCaptureFailed is matched by every CaptureError.
	ErrCaptureFailed = errors.New(captureFailedMessageConstant)
)

// LaunchError reports that the process for a command line could not be started.
// A child that starts and exits with a nonzero status is not a LaunchError.
type LaunchError struct {
	CommandLine string
	Cause       error
}

// Error describes the launch failure.
func (launchError LaunchError) Error() string {
	return fmt.Sprintf(launchErrorMessageTemplateConstant, launchError.CommandLine, launchError.Cause)
}

// Is reports ErrLaunchFailed as a match.
func (launchError LaunchError) Is(target error) bool {
	return target == ErrLaunchFailed
}

// Unwrap exposes the underlying spawn failure.
func (launchError LaunchError) Unwrap() error {
	return launchError.Cause
}

// CaptureError reports that the child's output could not be read back after it started.
type CaptureError struct {
	CommandLine string
	Cause       error
}

// Error describes the capture failure.
func (captureError CaptureError) Error() string {
	return fmt.Sprintf(captureErrorMessageTemplateConstant, captureError.CommandLine, captureError.Cause)
}

// Is reports ErrCaptureFailed as a match.
func (captureError CaptureError) Is(target error) bool {
	return target == ErrCaptureFailed
}

// Unwrap exposes the underlying I/O failure.
func (captureError CaptureError) Unwrap() error {
	return captureError.Cause
}
