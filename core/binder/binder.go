package binder

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/dispatchkit/core/handler"
)

// Step is a compiled per-parameter binding step. It produces the argument
// value for one method parameter from the request context.
type Step func(ctx handler.Context) (reflect.Value, error)

// Compile builds the binding step for a lookup-bound parameter: look up key,
// convert the raw values to t. An absent key binds the zero value of t, so
// pointer parameters short-circuit to nil; conversion failures fail only the
// request they occur on.
//
// Unconvertible target types are rejected here, at compile time, never per
// request.
func Compile(look Lookup, key string, t reflect.Type) (Step, error) {
	if !Convertible(t) {
		return nil, fmt.Errorf("%w: parameter %q has type %s", ErrUnsupportedType, key, t)
	}

	zero := reflect.Zero(t)
	return func(ctx handler.Context) (reflect.Value, error) {
		values, ok := look(ctx, key)
		if !ok || len(values) == 0 {
			return zero, nil
		}
		v, err := Convert(values, t)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: parameter %q: %w", ErrInvalidValue, key, err)
		}
		return v, nil
	}, nil
}
