// Package errors provides error classification for the documentation
// generator.
package errors

import (
	"errors"
	"fmt"
)

// Type categorizes failures for exit-code and reporting decisions.
type Type int

const (
	// Unknown is an uncategorized error.
	Unknown Type = iota
	// Usage represents a command-line usage error.
	Usage
	// Input represents an unreadable or structurally malformed HAR file.
	Input
	// Parse represents a field-level JSON parse failure in a payload that
	// is present in the capture.
	Parse
	// Filesystem represents an output-tree write failure.
	Filesystem
)

// String returns the string representation of Type.
func (t Type) String() string {
	switch t {
	case Usage:
		return "usage"
	case Input:
		return "input"
	case Parse:
		return "parse"
	case Filesystem:
		return "filesystem"
	default:
		return "unknown"
	}
}

// ExitCode returns the process exit code for errors of this type. Usage
// errors exit with 2, every other failure with 1.
func (t Type) ExitCode() int {
	if t == Usage {
		return 2
	}
	return 1
}

// RunError represents a categorized generator failure.
type RunError struct {
	Type      Type
	Path      string // file path or URL the failure relates to, if any
	Operation string
	Message   string
	Cause     error
}

// Error implements the error interface.
func (e *RunError) Error() string {
	if e.Cause != nil {
		if e.Path != "" {
			return fmt.Sprintf("%s error during %s on %s: %s (caused by: %v)",
				e.Type.String(), e.Operation, e.Path, e.Message, e.Cause)
		}
		return fmt.Sprintf("%s error during %s: %s (caused by: %v)",
			e.Type.String(), e.Operation, e.Message, e.Cause)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s error during %s on %s: %s",
			e.Type.String(), e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error during %s: %s",
		e.Type.String(), e.Operation, e.Message)
}

// Unwrap returns the underlying error.
func (e *RunError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches a target.
func (e *RunError) Is(target error) bool {
	t, ok := target.(*RunError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewRunError creates a new RunError.
func NewRunError(errType Type, path, operation, message string, cause error) *RunError {
	return &RunError{
		Type:      errType,
		Path:      path,
		Operation: operation,
		Message:   message,
		Cause:     cause,
	}
}

// NewUsageError creates a usage error.
func NewUsageError(message string) *RunError {
	return NewRunError(Usage, "", "argument_check", message, nil)
}

// NewInputError creates an input error for a HAR file.
func NewInputError(path, operation string, cause error) *RunError {
	return NewRunError(Input, path, operation, "HAR input rejected", cause)
}

// NewParseError creates a field-level parse error.
func NewParseError(url, field string, cause error) *RunError {
	return NewRunError(Parse, url, "decode_"+field, "payload is not valid JSON", cause)
}

// NewFilesystemError creates a filesystem error.
func NewFilesystemError(path, operation string, cause error) *RunError {
	return NewRunError(Filesystem, path, operation, "write failed", cause)
}

// GetType extracts the error type from an error.
func GetType(err error) Type {
	var runErr *RunError
	if errors.As(err, &runErr) {
		return runErr.Type
	}
	return Unknown
}

// ExitCode returns the exit code an error should terminate the run with.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return GetType(err).ExitCode()
}

// IsUsage checks if an error is a usage error.
func IsUsage(err error) bool {
	return GetType(err) == Usage
}

// IsParse checks if an error is a field-level parse error.
func IsParse(err error) bool {
	return GetType(err) == Parse
}
