package binder

import "errors"

// Error variables define binding failures. ErrUnsupportedType surfaces at
// compile time; the others fail individual requests.
var (
	// ErrUnsupportedType indicates a lookup-bound parameter whose type
	// cannot be produced from strings.
	ErrUnsupportedType = errors.New("unsupported parameter type")

	// ErrInvalidValue indicates a present value that failed conversion to
	// the parameter's type.
	ErrInvalidValue = errors.New("invalid parameter value")

	// ErrFailedToReadBody indicates the request body could not be read or
	// positioned.
	ErrFailedToReadBody = errors.New("failed to read request body")

	// ErrFailedToDecodeBody indicates the request body could not be
	// deserialized into the parameter's type.
	ErrFailedToDecodeBody = errors.New("failed to decode request body")
)
