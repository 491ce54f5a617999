// Package handler defines the two contracts shared by every layer of the
// dispatch pipeline: the request Context and the deferred Response action.
//
// Context extends context.Context with HTTP-specific access:
//
//	type Context interface {
//		context.Context
//		Request() *http.Request
//		ResponseWriter() http.ResponseWriter
//		Param(key string) string
//		SetValue(key, val any)
//	}
//
// Binding sources read request data through it, the body formatter consumes
// it, and response constructors render against it. Keeping the contract here,
// separate from the concrete implementation in core/dispatch, lets binder,
// response, and user code depend on the interface alone.
//
// Response separates producing a response from writing it:
//
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
// Handler methods that need full control over the wire format return a
// Response; the result normalizer detects the shape at compile time and
// invokes the action with the request instead of serializing it. The
// core/response package provides ready-made constructors (JSON, Status,
// NoContent, ...) and decorators for it.
package handler
