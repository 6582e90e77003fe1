package models

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid option value or a missing argument.
// It is always raised before any traversal starts.
type ConfigError struct {
	Option string // flag or config key, e.g. "--sort" or "sort"
	Value  string // offending value, empty when the value was missing
	Reason string // human-readable explanation
	Err    error  // underlying parse error (optional)
}

// NewConfigError creates a ConfigError.
func NewConfigError(option, value, reason string, err error) *ConfigError {
	return &ConfigError{Option: option, Value: value, Reason: reason, Err: err}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid configuration")
	if e.Option != "" {
		sb.WriteString(fmt.Sprintf(" for %s", e.Option))
	}
	if e.Value != "" {
		sb.WriteString(fmt.Sprintf(" (%q)", e.Value))
	}
	if e.Reason != "" {
		sb.WriteString(": " + e.Reason)
	}
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// FilesystemError reports a failed filesystem call. It aborts the run.
type FilesystemError struct {
	Op   string // readdir, stat, lstat, readlink, canonicalize, getwd
	Path string
	Err  error
}

// NewFilesystemError creates a FilesystemError.
func NewFilesystemError(op, path string, err error) *FilesystemError {
	return &FilesystemError{Op: op, Path: path, Err: err}
}

// Error implements the error interface.
func (e *FilesystemError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// RenderError reports a failed write to the output stream.
type RenderError struct {
	Err error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("write output: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error {
	return e.Err
}
