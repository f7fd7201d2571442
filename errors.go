// Package tridiag structured error types for better error handling
package tridiag

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Invalid argument errors
	ErrTypeInvalidArg ErrorType = iota
	// Backend selection errors
	ErrTypeBackend
)

// SolveError represents a structured error with context
type SolveError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *SolveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tridiag %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("tridiag %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *SolveError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeBackend:
		return "Backend"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &SolveError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewBackendError creates a backend selection error
func NewBackendError(op string, message string) error {
	return &SolveError{
		Type:    ErrTypeBackend,
		Op:      op,
		Message: message,
	}
}

// Common pre-defined errors

var (
	// ErrInvalidLaneWidth indicates a non-positive lane width option
	ErrInvalidLaneWidth = NewInvalidArgError("New", "lane width must be positive")

	// ErrInvalidWorkerCount indicates a non-positive worker count option
	ErrInvalidWorkerCount = NewInvalidArgError("New", "worker count must be positive")
)

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	if e, ok := err.(*SolveError); ok {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}

// IsBackendError checks if an error is a backend selection error
func IsBackendError(err error) bool {
	if e, ok := err.(*SolveError); ok {
		return e.Type == ErrTypeBackend
	}
	return false
}
