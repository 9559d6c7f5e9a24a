// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"gonih.org/chrono"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Arithmetic failure (overflow, out of range, unsupported unit)
	ExitCommandError = 2 // Malformed arguments
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
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

// Error codes reported in JSON output.
const (
	ErrCodeParse       = "E001"
	ErrCodeInvalid     = "E002"
	ErrCodeOutOfRange  = "E003"
	ErrCodeOverflow    = "E004"
	ErrCodeUnsupported = "E005"
	ErrCodeMismatch    = "E006"
	ErrCodeGeneric     = "E999"
)

// errorCode classifies an error of the chrono package.
func errorCode(err error) string {
	var pe *chrono.ParseError
	switch {
	case errors.As(err, &pe):
		return ErrCodeParse
	case errors.Is(err, chrono.ErrInvalidValue):
		return ErrCodeInvalid
	case errors.Is(err, chrono.ErrOutOfRange):
		return ErrCodeOutOfRange
	case errors.Is(err, chrono.ErrOverflow):
		return ErrCodeOverflow
	case errors.Is(err, chrono.ErrUnsupported):
		return ErrCodeUnsupported
	case errors.Is(err, chrono.ErrTypeMismatch):
		return ErrCodeMismatch
	}
	return ErrCodeGeneric
}

// exitCode maps parse failures to ExitCommandError and everything else to
// ExitFailure.
func exitCode(code string) int {
	if code == ErrCodeParse {
		return ExitCommandError
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success outputs a result. In text mode, only text is printed.
func (f *OutputFormatter) Success(text string, data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}
	_, err := fmt.Fprintln(f.Writer, text)
	return err
}

// Fail outputs err and returns it as an *ExitError.
func (f *OutputFormatter) Fail(message string, err error) error {
	code := errorCode(err)
	if f.Format == "json" {
		if encErr := json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: fmt.Sprintf("%s: %v", message, err),
			},
		}); encErr != nil {
			return encErr
		}
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s: %v\n", code, message, err)
	}
	return WrapExitError(exitCode(code), message, err)
}
