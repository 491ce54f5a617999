package dispatch

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/dispatchkit/core/scope"
)

// Endpoint is a compiled, routable method. It serves requests through the
// pipeline fixed at build time and carries the routing template and the
// model metadata for whoever registers it.
type Endpoint struct {
	// Route is the routing template the endpoint registers under, in the
	// routing engine's syntax, e.g. "GET /users/{id}".
	Route string

	// Name identifies the endpoint for logs and diagnostics, in
	// Type.Method form.
	Name string

	// Metadata carries the model's method metadata verbatim.
	Metadata []any

	// Plan describes the compiled pipeline.
	Plan *Plan

	run     Invoker
	scope   *scope.Scope
	onError ErrorHandler
	logger  *slog.Logger
}

// ServeHTTP implements http.Handler. Each request runs against a child of
// the build scope, panics are recovered with their stack, and failures go
// to the error handler unless response bytes are already out.
func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)
	ctx := newContext(ww, r, e.scope.Child())

	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}

			if ww.Written() {
				// Can't send an error response, just log the panic
				e.logger.Error("panic after response written",
					"endpoint", e.Name,
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"status", ww.Status(),
				)
				return
			}
			e.onError(ctx, panicErr)
		}
	}()

	if err := e.run(ctx); err != nil {
		if ww.Written() {
			e.logger.Error("pipeline error after response written",
				"endpoint", e.Name,
				"error", err,
				"status", ww.Status(),
			)
			return
		}
		e.onError(ctx, err)
	}
}

// Registrar accepts compiled endpoints for routing. *http.ServeMux
// satisfies it; any router keyed by pattern strings can too.
type Registrar interface {
	Handle(pattern string, h http.Handler)
}

// Mount registers every endpoint with the registrar under its route
// template.
func Mount(reg Registrar, endpoints []*Endpoint) {
	for _, ep := range endpoints {
		reg.Handle(ep.Route, ep)
	}
}
