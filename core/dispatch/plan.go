package dispatch

import (
	"reflect"
)

// Strategy reports how a compiled pipeline produces the method receiver.
type Strategy int

const (
	// StrategyStatic marks methods invoked without a receiver.
	StrategyStatic Strategy = iota

	// StrategyZeroValue marks methods whose receiver is implicitly
	// constructed as a zero value (a fresh pointee for pointer receivers).
	StrategyZeroValue

	// StrategyConstructor marks methods whose receiver comes from the
	// model's constructor, with arguments resolved from the request scope.
	StrategyConstructor
)

var strategyNames = [...]string{
	"static",
	"zero-value",
	"constructor",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}
	return strategyNames[s]
}

// readyFunc prepares the request before any argument is bound.
type readyFunc func(ctx *Context) error

// instanceFunc produces the method receiver for one request.
type instanceFunc func(ctx *Context) (reflect.Value, error)

// argFunc produces one bound argument for one request.
type argFunc func(ctx *Context) (reflect.Value, error)

// normalizeFunc turns the method's raw results into a response or an error.
type normalizeFunc func(ctx *Context, out []reflect.Value) error

// Plan is the compiled pipeline for a single routed method. The exported
// fields describe what the compiler decided; the steps themselves are
// private closures executed in a fixed order on every request.
type Plan struct {
	// Strategy reports how the receiver is produced.
	Strategy Strategy

	// NeedsForm reports whether form data is parsed before binding.
	NeedsForm bool

	// NeedsBody reports whether the request body is read during binding.
	NeedsBody bool

	ready     readyFunc
	instance  instanceFunc
	args      []argFunc
	call      reflect.Value
	normalize normalizeFunc
}

// invoke runs the pipeline: readiness, receiver production, argument
// binding in declaration order, the call itself, then normalization.
func (p *Plan) invoke(ctx *Context) error {
	if p.ready != nil {
		if err := p.ready(ctx); err != nil {
			return err
		}
	}

	in := make([]reflect.Value, 0, len(p.args)+1)
	if p.instance != nil {
		recv, err := p.instance(ctx)
		if err != nil {
			return err
		}
		in = append(in, recv)
	}
	for _, bind := range p.args {
		v, err := bind(ctx)
		if err != nil {
			return err
		}
		in = append(in, v)
	}

	out := p.call.Call(in)

	if p.normalize == nil {
		return nil
	}
	return p.normalize(ctx, out)
}
