// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Arithmetic failure (size mismatch, out of range, ...)
	ExitCommandError = 2 // Command error (bad flags, unreadable operands, malformed input)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes results and diagnostics for CLI commands.
type OutputFormatter struct {
	Writer    io.Writer
	ErrWriter io.Writer // Verbose/diagnostic output; keeps results clean on Writer
	Verbose   bool
}

// VerboseLog writes a diagnostic line to ErrWriter when Verbose is set.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, "[verbose] "+format+"\n", args...)
}

// Result writes a value implementing io.WriterTo. A newline follows when
// trailingNewline is set; pass false for renderings that end in one already
// (matrices).
func (f *OutputFormatter) Result(v io.WriterTo, trailingNewline bool) error {
	if _, err := v.WriteTo(f.Writer); err != nil {
		return WrapExitError(ExitCommandError, "write result", err)
	}
	if trailingNewline {
		if _, err := io.WriteString(f.Writer, "\n"); err != nil {
			return WrapExitError(ExitCommandError, "write result", err)
		}
	}
	return nil
}

// Scalar writes a single value on its own line.
func (f *OutputFormatter) Scalar(v any) error {
	if _, err := fmt.Fprintln(f.Writer, v); err != nil {
		return WrapExitError(ExitCommandError, "write result", err)
	}
	return nil
}
