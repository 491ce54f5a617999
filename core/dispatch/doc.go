// Package dispatch compiles declarative handler models into routable HTTP
// endpoints. All reflection happens once, at build time: signatures are
// inspected, binding steps and result normalization are selected, and the
// receiver production strategy is fixed. The compiled endpoint then serves
// every request through plain closures without consulting the model again.
//
// # Features
//
//   - One-time compilation of handler models into per-method pipelines
//   - Argument binding from query, header, route value, cookie, and form
//   - Request body decoding through pluggable formatters
//   - Service injection from a hierarchical scope
//   - Result normalization for values, errors, deferred work, and delegates
//   - Compile-time middleware composition
//   - Panic recovery with stack capture
//   - Compatible with http.ServeMux and any pattern-based registrar
//
// # Basic Usage
//
// Describe handlers as data, compile them, and mount the endpoints:
//
//	import (
//		"github.com/dmitrymomot/dispatchkit/core/dispatch"
//		"github.com/dmitrymomot/dispatchkit/core/model"
//	)
//
//	h := model.Handler{
//		Type:        reflect.TypeOf(&UserHandler{}),
//		Constructor: NewUserHandler,
//		Methods: []model.Method{
//			{
//				Name:  "Get",
//				Func:  (*UserHandler).Get,
//				Route: "GET /users/{id}",
//				Params: []model.Param{
//					{Name: "id", Source: model.SourceRoute},
//				},
//			},
//		},
//	}
//
//	endpoints, err := dispatch.Build(h)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	dispatch.Mount(mux, endpoints)
//	http.ListenAndServe(":8080", mux)
//
// # Binding
//
// Each parameter declares where its argument comes from. Values are
// converted to the declared type; absent values yield the zero value
// rather than an error:
//
//	Params: []model.Param{
//		{Name: "q", Source: model.SourceQuery},
//		{Name: "requestID", Source: model.SourceHeader, Key: "X-Request-ID"},
//		{Name: "payload", Source: model.SourceBody},
//		{Name: "repo", Source: model.SourceService},
//	}
//
// Parameters with SourceNone receive framework values matched by type:
// the request context, *http.Request, http.ResponseWriter, url.Values,
// http.Header, or the request scope.
//
// # Results
//
// The normalizer is selected from the method's declared results. Errors
// are routed to the endpoint's error handler, nil nilable values become
// 404 responses, handler.Response values are invoked as delegates, and
// everything else is serialized as JSON with status 200. Deferred results
// (*async.ExecFuture and types with an Await() (T, error) method) are
// awaited before normalization.
//
// # Middleware
//
// Middleware wraps the compiled pipeline at build time:
//
//	logging := func(next dispatch.Invoker) dispatch.Invoker {
//		return func(ctx *dispatch.Context) error {
//			start := time.Now()
//			err := next(ctx)
//			slog.Info("request", "endpoint", ctx.Request().URL.Path, "took", time.Since(start))
//			return err
//		}
//	}
//
//	endpoints, err := dispatch.Build(h, dispatch.WithMiddleware(logging))
package dispatch
