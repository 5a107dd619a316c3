// Package errors defines the error kinds shared across the gostep library.
package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the gostep library

var (
	// ErrEmptyInput indicates that a partial operation (head, last, tail, a *1 fold)
	// was applied to a stream that produced no element
	ErrEmptyInput = errors.New("empty input")

	// ErrIndexOutOfRange indicates that an index was negative or past the end of a stream
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// EmptyInputError reports a partial stream operation that found no element
// where one was structurally required.
type EmptyInputError struct {
	Op      string // e.g., "Head", "Index"
	Index   int    // requested position, meaningful when Indexed is set
	Indexed bool
}

// NewEmptyInputError creates an EmptyInputError for a non-indexing operation.
func NewEmptyInputError(op string) *EmptyInputError {
	return &EmptyInputError{Op: op}
}

// NewIndexError creates an EmptyInputError for a negative or past-the-end index.
func NewIndexError(op string, index int) *EmptyInputError {
	return &EmptyInputError{Op: op, Index: index, Indexed: true}
}

// Error implements the error interface.
func (e *EmptyInputError) Error() string {
	if e.Indexed {
		return fmt.Sprintf("%s: index %d out of range", e.Op, e.Index)
	}
	return fmt.Sprintf("%s: empty input", e.Op)
}

// Unwrap returns ErrEmptyInput so errors.Is matches every instance.
func (e *EmptyInputError) Unwrap() error {
	return ErrEmptyInput
}

// Is additionally matches ErrIndexOutOfRange for indexing failures.
func (e *EmptyInputError) Is(target error) bool {
	return e.Indexed && target == ErrIndexOutOfRange
}

// ValidationError provides detailed context about validation failures.
type ValidationError struct {
	Module string      // e.g., "redisstream", "cronstream"
	Field  string      // e.g., "key", "page_size"
	Value  interface{} // the invalid value
	Reason string      // e.g., "must be positive"
	Hint   string      // optional suggestion for fixing
}

// NewValidationError creates a ValidationError.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint sets the hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns ErrInvalidConfiguration.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// OperationError wraps a failure raised by an effectful source owned by this library.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// NewOperationError creates an OperationError.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// WithContext sets additional context and returns the same error for chaining.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}

// IsEmptyInput returns true if err reports an empty input or out-of-range index.
func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
