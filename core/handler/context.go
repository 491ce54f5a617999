package handler

import (
	"context"
	"net/http"
)

// Context is the request context every compiled endpoint and binding step
// operates on. It extends context.Context with access to the underlying
// request, the response writer, route values, and request-scoped storage.
//
// The dispatch package provides the concrete implementation; the interface
// exists so binding and response code stay independent of it.
type Context interface {
	context.Context

	// Request returns the underlying HTTP request.
	Request() *http.Request

	// ResponseWriter returns the response writer for the request.
	ResponseWriter() http.ResponseWriter

	// Param returns the route value for key as extracted by the routing
	// engine, or the empty string when the key is absent.
	Param(key string) string

	// SetValue stores a request-scoped value retrievable through Value.
	SetValue(key, val any)
}
