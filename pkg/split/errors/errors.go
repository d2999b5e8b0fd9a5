// Package errors provides error types and error codes for the split package.
// This is a leaf package with no internal dependencies, designed to be imported
// by the split, transfer, and command packages without causing circular imports.
package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
)

// ErrorCode represents the type of error that occurred.
type ErrorCode int

const (
	// ErrInvalidArgument indicates an out-of-range shard index, position,
	// or shard count. These are programming errors at the call site.
	ErrInvalidArgument ErrorCode = iota + 1

	// ErrNotFound indicates the source directory does not exist.
	ErrNotFound

	// ErrNotADirectory indicates the source path exists but is not a directory.
	ErrNotADirectory

	// ErrAlreadyExists indicates the resource already exists.
	// Provisioning suppresses this code entirely; it exists for completeness.
	ErrAlreadyExists

	// ErrPermissionDenied indicates the filesystem refused an operation.
	ErrPermissionDenied

	// ErrIOFailure indicates a filesystem failure not explained by
	// "already exists" or a permission check.
	ErrIOFailure

	// ErrTransferFailure indicates an individual file's move or copy failed.
	ErrTransferFailure
)

// String returns a human-readable name for the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrNotFound:
		return "NotFound"
	case ErrNotADirectory:
		return "NotADirectory"
	case ErrAlreadyExists:
		return "AlreadyExists"
	case ErrPermissionDenied:
		return "PermissionDenied"
	case ErrIOFailure:
		return "IOFailure"
	case ErrTransferFailure:
		return "TransferFailure"
	default:
		return fmt.Sprintf("Unknown(%d)", e)
	}
}

// SplitError represents a split operation error with an error code.
type SplitError struct {
	Code    ErrorCode
	Message string
	Path    string
	Err     error
}

// Error implements the error interface.
func (e *SplitError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path: %s)", e.Code, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *SplitError) Unwrap() error {
	return e.Err
}

// CodeOf returns the error code carried by err, or 0 if err is not a SplitError.
func CodeOf(err error) ErrorCode {
	var se *SplitError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return 0
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// ============================================================================
// Factory Functions
// ============================================================================

// NewInvalidArgumentError creates an InvalidArgument error.
func NewInvalidArgumentError(message string) *SplitError {
	return &SplitError{
		Code:    ErrInvalidArgument,
		Message: message,
	}
}

// NewNotFoundError creates a NotFound error.
func NewNotFoundError(path string) *SplitError {
	return &SplitError{
		Code:    ErrNotFound,
		Message: "directory not found",
		Path:    path,
	}
}

// NewNotADirectoryError creates a NotADirectory error.
func NewNotADirectoryError(path string) *SplitError {
	return &SplitError{
		Code:    ErrNotADirectory,
		Message: "not a directory",
		Path:    path,
	}
}

// NewPermissionDeniedError creates a PermissionDenied error.
func NewPermissionDeniedError(path string, cause error) *SplitError {
	return &SplitError{
		Code:    ErrPermissionDenied,
		Message: "permission denied",
		Path:    path,
		Err:     cause,
	}
}

// NewIOError creates an IOFailure error wrapping the filesystem cause.
func NewIOError(message, path string, cause error) *SplitError {
	return &SplitError{
		Code:    ErrIOFailure,
		Message: message,
		Path:    path,
		Err:     cause,
	}
}

// NewTransferFailureError creates a TransferFailure error for the given
// source path, wrapping the transfer cause.
func NewTransferFailureError(path string, cause error) *SplitError {
	return &SplitError{
		Code:    ErrTransferFailure,
		Message: "transfer failed",
		Path:    path,
		Err:     cause,
	}
}

// NewOSError classifies a filesystem error as PermissionDenied or IOFailure,
// keeping the original cause in the chain.
func NewOSError(message, path string, cause error) *SplitError {
	code := ErrIOFailure
	if stderrors.Is(cause, fs.ErrPermission) {
		code = ErrPermissionDenied
	}
	return &SplitError{
		Code:    code,
		Message: message,
		Path:    path,
		Err:     cause,
	}
}
