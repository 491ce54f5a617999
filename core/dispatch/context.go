package dispatch

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/dispatchkit/core/scope"
)

// Context is the request context compiled pipelines run against. It
// implements handler.Context, delegating context.Context methods to the
// request's context, and additionally exposes the request-scoped service
// scope.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	scope  *scope.Scope
	values map[any]any
}

// newContext creates a request context backed by the given scope.
func newContext(w http.ResponseWriter, r *http.Request, sc *scope.Scope) *Context {
	return &Context{
		w:     w,
		r:     r,
		scope: sc,
	}
}

// Deadline returns the time when work done on behalf of this context
// should be canceled. Delegates to r.Context().
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done returns a channel that's closed when work done on behalf of this
// context should be canceled. Delegates to r.Context().
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err returns a non-nil error value after Done is closed. Delegates to r.Context().
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns the value stored via SetValue for key, falling back to the
// request context's values.
func (c *Context) Value(key any) any {
	if c.values != nil {
		if v, ok := c.values[key]; ok {
			return v
		}
	}
	return c.r.Context().Value(key)
}

// SetValue stores a request-scoped value retrievable through Value.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Request returns the *http.Request associated with the context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the http.ResponseWriter associated with the context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the value of the route parameter by key, as extracted by
// the routing engine. Empty string means the parameter is absent.
func (c *Context) Param(key string) string {
	return c.r.PathValue(key)
}

// Scope returns the request's service scope. It is a child of the scope
// the endpoint was compiled with, so values registered here stay local to
// the request.
func (c *Context) Scope() *scope.Scope {
	return c.scope
}
