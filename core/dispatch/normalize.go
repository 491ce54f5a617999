package dispatch

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/dispatchkit/core/handler"
	"github.com/dmitrymomot/dispatchkit/core/response"
	"github.com/dmitrymomot/dispatchkit/pkg/async"
)

var (
	errorType      = reflect.TypeFor[error]()
	responseType   = reflect.TypeFor[handler.Response]()
	execFutureType = reflect.TypeFor[*async.ExecFuture]()
)

// valueFunc renders one method result value.
type valueFunc func(ctx *Context, v reflect.Value) error

// compileNormalize selects the normalization step from the method's
// declared results. Supported shapes are no results, a lone error, a lone
// value, and a value with a trailing error. Everything the declared types
// reveal is decided here; only values the declaration cannot pin down
// (interface results) are inspected per request.
func compileNormalize(ft reflect.Type) (normalizeFunc, error) {
	switch ft.NumOut() {
	case 0:
		// The method writes its own response, or none at all.
		return nil, nil

	case 1:
		if ft.Out(0) == errorType {
			return func(ctx *Context, out []reflect.Value) error {
				return errOf(out[0])
			}, nil
		}
		vn, err := compileValue(ft.Out(0), nil)
		if err != nil {
			return nil, err
		}
		return func(ctx *Context, out []reflect.Value) error {
			return vn(ctx, out[0])
		}, nil

	case 2:
		if ft.Out(0) == errorType {
			return nil, fmt.Errorf("%w: error must be the last result", ErrInvalidResults)
		}
		if ft.Out(1) != errorType {
			return nil, fmt.Errorf("%w: second result must be error, got %s", ErrInvalidResults, ft.Out(1))
		}
		vn, err := compileValue(ft.Out(0), nil)
		if err != nil {
			return nil, err
		}
		return func(ctx *Context, out []reflect.Value) error {
			if err := errOf(out[1]); err != nil {
				return err
			}
			return vn(ctx, out[0])
		}, nil
	}

	return nil, fmt.Errorf("%w: want at most 2 results, got %d", ErrInvalidResults, ft.NumOut())
}

// compileValue selects the rendering step for a single result type. The
// seen list breaks cycles between mutually awaiting deferred types.
func compileValue(t reflect.Type, seen []reflect.Type) (valueFunc, error) {
	for _, s := range seen {
		if s == t {
			return nil, fmt.Errorf("%w: deferred result %s awaits itself", ErrInvalidResults, t)
		}
	}

	// Deferred work without a value: await it, send no body.
	if t == execFutureType {
		return func(ctx *Context, v reflect.Value) error {
			if v.IsNil() {
				return nil
			}
			return v.Interface().(*async.ExecFuture).Await()
		}, nil
	}

	// Deferred values: await, then render what arrived.
	if m, value, ok := awaitMethod(t); ok {
		inner, err := compileValue(value, append(seen, t))
		if err != nil {
			return nil, err
		}
		idx := m.Index
		nilable := isNilable(t.Kind())
		return func(ctx *Context, v reflect.Value) error {
			if nilable && v.IsNil() {
				return response.ErrNotFound
			}
			out := v.Method(idx).Call(nil)
			if err := errOf(out[1]); err != nil {
				return err
			}
			return inner(ctx, out[0])
		}, nil
	}

	// Delegates take over response writing entirely.
	if t == responseType {
		return func(ctx *Context, v reflect.Value) error {
			if v.IsNil() {
				return response.ErrNotFound
			}
			return v.Interface().(handler.Response)(ctx.w, ctx.r)
		}, nil
	}

	// Interface results cannot be specialized further at compile time.
	if t.Kind() == reflect.Interface {
		return func(ctx *Context, v reflect.Value) error {
			if v.IsNil() {
				return response.ErrNotFound
			}
			val := v.Interface()
			if resp, ok := val.(handler.Response); ok {
				return resp(ctx.w, ctx.r)
			}
			return response.JSON(val)(ctx.w, ctx.r)
		}, nil
	}

	switch t.Kind() {
	case reflect.Chan, reflect.Func:
		return nil, fmt.Errorf("%w: %s is not a serializable result", ErrInvalidResults, t)
	}

	if isNilable(t.Kind()) {
		return func(ctx *Context, v reflect.Value) error {
			if v.IsNil() {
				return response.ErrNotFound
			}
			return response.JSON(v.Interface())(ctx.w, ctx.r)
		}, nil
	}

	return func(ctx *Context, v reflect.Value) error {
		return response.JSON(v.Interface())(ctx.w, ctx.r)
	}, nil
}

// awaitMethod reports whether t is a deferred value carrier, recognized
// by an Await method returning a value and an error. It returns the
// method and the awaited value type.
func awaitMethod(t reflect.Type) (reflect.Method, reflect.Type, bool) {
	m, ok := t.MethodByName("Await")
	if !ok {
		return reflect.Method{}, nil, false
	}
	// Concrete method types carry the receiver as the first input.
	wantIn := 1
	if t.Kind() == reflect.Interface {
		wantIn = 0
	}
	mt := m.Type
	if mt.NumIn() != wantIn || mt.NumOut() != 2 || mt.Out(1) != errorType {
		return reflect.Method{}, nil, false
	}
	return m, mt.Out(0), true
}

// errOf unwraps an error-typed reflect value.
func errOf(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}

// isNilable reports whether values of the kind can be nil.
func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
