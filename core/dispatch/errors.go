package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatchedParams indicates the declared parameter list does not
	// line up with the method func's signature.
	ErrMismatchedParams = errors.New("declared parameters do not match method signature")

	// ErrInvalidConstructor indicates a constructor whose signature cannot
	// produce the method receiver.
	ErrInvalidConstructor = errors.New("invalid constructor signature")

	// ErrInvalidResults indicates a method result shape the normalizer
	// does not support.
	ErrInvalidResults = errors.New("unsupported method results")
)

// PanicError allows error handlers to detect recovered panics. When a panic
// escapes a pipeline, the endpoint wraps it in an error implementing this
// interface before invoking the error handler.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

// panicError is the private implementation of PanicError.
type panicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *panicError) Value() any {
	return e.value
}

// Stack returns the stack trace.
func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
