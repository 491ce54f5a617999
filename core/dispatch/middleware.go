package dispatch

// Invoker runs a compiled pipeline against a request context.
type Invoker func(ctx *Context) error

// Middleware wraps an Invoker with cross-cutting behavior. Middleware is
// composed at compile time, so the chain adds no per-request assembly cost.
type Middleware func(next Invoker) Invoker

// chain builds a single invoker from a middleware stack and pipeline.
func chain(middlewares []Middleware, pipeline Invoker) Invoker {
	// Start with the pipeline
	invoke := pipeline

	// Wrap in middleware in reverse order
	// so the first middleware runs first
	for i := len(middlewares) - 1; i >= 0; i-- {
		invoke = middlewares[i](invoke)
	}

	return invoke
}
