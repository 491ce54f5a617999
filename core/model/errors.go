package model

import "errors"

// Error variables define structural model defects detected before compilation.
var (
	// ErrInvalidFunc indicates a method's Func is nil or not a func value.
	ErrInvalidFunc = errors.New("method func must be a func value")

	// ErrInvalidConstructor indicates the handler constructor is not a func.
	ErrInvalidConstructor = errors.New("constructor must be a func value")

	// ErrUnnamedMethod indicates a method without a name.
	ErrUnnamedMethod = errors.New("method name is required")

	// ErrUnnamedParam indicates a lookup-bound parameter without a name to
	// use as its key.
	ErrUnnamedParam = errors.New("parameter name is required")

	// ErrUnknownSource indicates a parameter with an undefined binding source.
	ErrUnknownSource = errors.New("unknown binding source")
)
