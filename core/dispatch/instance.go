package dispatch

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/dispatchkit/core/model"
)

// compileInstance fixes the receiver production strategy for an instance
// method. With no constructor the receiver is implicitly constructed: a
// fresh pointee for pointer receivers, the zero value otherwise. With a
// constructor, return count mismatches and unassignable return types fail
// compilation; argument resolution from the scope is deferred to request
// time.
func compileInstance(h model.Handler, recv reflect.Type) (instanceFunc, Strategy, error) {
	if h.Constructor == nil {
		if recv.Kind() == reflect.Pointer {
			elem := recv.Elem()
			return func(ctx *Context) (reflect.Value, error) {
				return reflect.New(elem), nil
			}, StrategyZeroValue, nil
		}
		zero := reflect.Zero(recv)
		return func(ctx *Context) (reflect.Value, error) {
			return zero, nil
		}, StrategyZeroValue, nil
	}

	cv := reflect.ValueOf(h.Constructor)
	ct := cv.Type()

	if ct.IsVariadic() {
		return nil, 0, fmt.Errorf("%w: variadic constructors are not supported", ErrInvalidConstructor)
	}
	switch ct.NumOut() {
	case 1, 2:
	default:
		return nil, 0, fmt.Errorf("%w: want 1 or 2 results, got %d", ErrInvalidConstructor, ct.NumOut())
	}
	if !ct.Out(0).AssignableTo(recv) {
		return nil, 0, fmt.Errorf("%w: returns %s, receiver is %s", ErrInvalidConstructor, ct.Out(0), recv)
	}
	hasErr := ct.NumOut() == 2
	if hasErr && ct.Out(1) != errorType {
		return nil, 0, fmt.Errorf("%w: second result must be error, got %s", ErrInvalidConstructor, ct.Out(1))
	}

	if ct.NumIn() == 0 {
		return func(ctx *Context) (reflect.Value, error) {
			out := cv.Call(nil)
			if hasErr && !out[1].IsNil() {
				return reflect.Value{}, out[1].Interface().(error)
			}
			return out[0], nil
		}, StrategyConstructor, nil
	}

	ins := make([]reflect.Type, ct.NumIn())
	for i := range ins {
		ins[i] = ct.In(i)
	}
	return func(ctx *Context) (reflect.Value, error) {
		in := make([]reflect.Value, len(ins))
		for i, t := range ins {
			v, err := ctx.scope.ResolveType(t)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("constructor argument %s: %w", t, err)
			}
			in[i] = reflect.ValueOf(v)
		}
		out := cv.Call(in)
		if hasErr && !out[1].IsNil() {
			return reflect.Value{}, out[1].Interface().(error)
		}
		return out[0], nil
	}, StrategyConstructor, nil
}
