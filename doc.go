// Package dispatchkit provides a toolkit for building HTTP services from
// declarative handler models. Handlers are described as plain data, compiled
// once at startup into per-method invocation pipelines, and mounted on any
// router that accepts pattern/handler pairs. The library implements modern Go
// patterns including functional options for configuration, interface-based
// design for testability, and reflection confined to compile time so request
// handling runs on prebuilt closures.
//
// # LLM Assistant Note
//
// This file serves as a comprehensive index of all packages in the dispatchkit
// library, designed to help LLMs understand the complete codebase structure and
// functionality. Each package entry includes the full import path and a concise
// description of its purpose.
//
// # Package Organization
//
// The dispatchkit library is organized into three main categories:
//
//   - Core: the model, compiler, and runtime components
//   - Middleware: cross-cutting concerns for compiled pipelines
//   - Utilities: standalone packages for common functionality
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/dispatchkit/core/dispatch
//	go doc -all github.com/dmitrymomot/dispatchkit/middleware
//
// # Core Framework Packages
//
// These packages provide the fundamental building blocks:
//
//	github.com/dmitrymomot/dispatchkit/core/binder   - String-to-value conversion for request data
//	github.com/dmitrymomot/dispatchkit/core/config   - Type-safe environment variable loading
//	github.com/dmitrymomot/dispatchkit/core/dispatch - Handler model compilation into routable endpoints
//	github.com/dmitrymomot/dispatchkit/core/handler  - Shared handler and response abstractions
//	github.com/dmitrymomot/dispatchkit/core/logger   - Structured logging built on slog
//	github.com/dmitrymomot/dispatchkit/core/model    - Declarative handler, method, and parameter descriptions
//	github.com/dmitrymomot/dispatchkit/core/response - HTTP response rendering with error mapping
//	github.com/dmitrymomot/dispatchkit/core/scope    - Type-keyed service registry for request-time resolution
//	github.com/dmitrymomot/dispatchkit/core/server   - HTTP server with graceful shutdown
//
// # HTTP Middleware Packages
//
// Pre-built middleware components for common cross-cutting concerns:
//
//	github.com/dmitrymomot/dispatchkit/middleware    - Request ID, client IP, body limits, security headers, logging
//
// # Utility Packages
//
// Standalone packages providing specific functionality:
//
//	github.com/dmitrymomot/dispatchkit/pkg/async    - Asynchronous programming utilities with Future pattern
//	github.com/dmitrymomot/dispatchkit/pkg/clientip - Real client IP extraction from HTTP requests
//
// A complete application wiring these packages together lives under
// app/simple.
//
// # Architecture Patterns
//
// The dispatchkit library follows these key architectural patterns:
//
//   - Declarative models compiled once; requests execute prebuilt closures
//   - Functional options for flexible configuration
//   - Interface-based design for testability and modularity
//   - Explicit sentinel errors wrapped with context at each layer
//
// # Example Usage
//
//	import (
//		"context"
//		"log"
//		"net/http"
//		"reflect"
//
//		"github.com/dmitrymomot/dispatchkit/core/dispatch"
//		"github.com/dmitrymomot/dispatchkit/core/model"
//		"github.com/dmitrymomot/dispatchkit/core/server"
//		"github.com/dmitrymomot/dispatchkit/middleware"
//	)
//
//	type Greeter struct{}
//
//	func NewGreeter() *Greeter { return &Greeter{} }
//
//	func (g *Greeter) Hello(ctx context.Context, name string) (map[string]string, error) {
//		return map[string]string{"message": "hello " + name}, nil
//	}
//
//	type Models struct{}
//
//	func (Models) Models() []model.Handler {
//		return []model.Handler{{
//			Type:        reflect.TypeFor[*Greeter](),
//			Constructor: NewGreeter,
//			Methods: []model.Method{{
//				Name:  "Hello",
//				Func:  (*Greeter).Hello,
//				Route: "GET /hello/{name}",
//				Params: []model.Param{
//					{Name: "ctx"},
//					{Name: "name", Source: model.SourceRoute},
//				},
//			}},
//		}}
//	}
//
//	func main() {
//		endpoints, err := dispatch.BuildAll(Models{},
//			dispatch.WithMiddleware(middleware.RequestID(), middleware.Logging()),
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		mux := http.NewServeMux()
//		dispatch.Mount(mux, endpoints)
//
//		if err := server.Run(context.Background(), ":8080", mux); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Each endpoint serves exactly one method: arguments are bound from the
// request, the receiver is resolved, the method is invoked, and the result is
// rendered. Binding failures map to 400, nil results to 404, and panics are
// captured with stack traces and rendered as 500 responses.
package dispatchkit
