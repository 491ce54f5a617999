// Package scope implements the service-resolution capability consumed by the
// dispatch compiler: a type-keyed registry with parent chaining, singleton
// values, and transient factories.
//
// # Usage
//
//	root := scope.New()
//	scope.Register[*slog.Logger](root, logger)
//	scope.Register[UserStore](root, newMemoryStore())
//	scope.Provide[*RequestTracer](root, newRequestTracer)
//
//	// per request
//	req := root.Child()
//	store, err := scope.Resolve[UserStore](req)
//
// Register stores one shared value; Provide runs its factory on every
// resolution. Interface types work as registration keys, so implementations
// can be swapped without touching consumers.
//
// # Resolution order
//
// Exact type match wins, nearest scope first; otherwise entries are scanned
// in registration order for assignability, which lets a concrete registration
// satisfy an interface-typed request. Resolution is deliberately flat: a
// factory may pull its own dependencies from the scope, but the package never
// builds or orders a dependency graph.
package scope
