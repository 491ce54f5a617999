package dispatch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reflect"

	"github.com/dmitrymomot/dispatchkit/core/binder"
	"github.com/dmitrymomot/dispatchkit/core/handler"
	"github.com/dmitrymomot/dispatchkit/core/model"
	"github.com/dmitrymomot/dispatchkit/core/response"
	"github.com/dmitrymomot/dispatchkit/core/scope"
)

var (
	contextType        = reflect.TypeFor[*Context]()
	requestType        = reflect.TypeFor[*http.Request]()
	responseWriterType = reflect.TypeFor[http.ResponseWriter]()
	scopeType          = reflect.TypeFor[*scope.Scope]()
	urlValuesType      = reflect.TypeFor[url.Values]()
	httpHeaderType     = reflect.TypeFor[http.Header]()
)

// lookups maps lookup-style sources to their value extraction.
var lookups = map[model.Source]binder.Lookup{
	model.SourceQuery:  binder.Query(),
	model.SourceHeader: binder.Header(),
	model.SourceRoute:  binder.Route(),
	model.SourceCookie: binder.Cookie(),
	model.SourceForm:   binder.Form(),
}

// compileParam selects the binding step for one parameter. The returned
// flags report whether the step depends on parsed form data or on the
// request body, so the readiness step can be planned.
func compileParam(p model.Param, t reflect.Type, cfg *config) (bind argFunc, needsForm, needsBody bool, err error) {
	switch p.Source {
	case model.SourceQuery, model.SourceHeader, model.SourceRoute, model.SourceCookie, model.SourceForm:
		step, err := binder.Compile(lookups[p.Source], p.LookupKey(), t)
		if err != nil {
			return nil, false, false, err
		}
		// Conversion failures are client input problems.
		bind := func(ctx *Context) (reflect.Value, error) {
			v, err := step(ctx)
			if err != nil {
				return reflect.Value{}, response.ErrBadRequest.WithError(err)
			}
			return v, nil
		}
		return bind, p.Source == model.SourceForm, false, nil

	case model.SourceService:
		bind := func(ctx *Context) (reflect.Value, error) {
			v, err := ctx.scope.ResolveType(t)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("service %s: %w", t, err)
			}
			return reflect.ValueOf(v), nil
		}
		return bind, false, false, nil

	case model.SourceBody:
		formatter := cfg.formatter
		bind := func(ctx *Context) (reflect.Value, error) {
			v, err := formatter.Read(ctx, t)
			if err != nil {
				return reflect.Value{}, response.ErrBadRequest.WithError(err)
			}
			return reflect.ValueOf(v), nil
		}
		return bind, false, true, nil

	case model.SourceNone:
		return compileContextParam(t)
	}

	return nil, false, false, fmt.Errorf("%w: source %s", ErrMismatchedParams, p.Source)
}

// compileContextParam matches a context parameter to a framework value by
// its declared type. Unmatched types bind to their zero value.
func compileContextParam(t reflect.Type) (argFunc, bool, bool, error) {
	switch {
	case t == requestType:
		return func(ctx *Context) (reflect.Value, error) {
			return reflect.ValueOf(ctx.r), nil
		}, false, false, nil

	case t == scopeType:
		return func(ctx *Context) (reflect.Value, error) {
			return reflect.ValueOf(ctx.scope), nil
		}, false, false, nil

	case t == urlValuesType:
		// Binding r.Form requires the form to be parsed first.
		return func(ctx *Context) (reflect.Value, error) {
			return reflect.ValueOf(ctx.r.Form), nil
		}, true, false, nil

	case t == httpHeaderType:
		return func(ctx *Context) (reflect.Value, error) {
			return reflect.ValueOf(ctx.r.Header), nil
		}, false, false, nil

	case t == responseWriterType:
		return func(ctx *Context) (reflect.Value, error) {
			return reflect.ValueOf(ctx.w), nil
		}, false, false, nil

	case t.Kind() == reflect.Interface && contextType.Implements(t):
		// Covers handler.Context, context.Context, and any caller-defined
		// interface the request context satisfies.
		return func(ctx *Context) (reflect.Value, error) {
			return reflect.ValueOf(ctx), nil
		}, false, false, nil
	}

	zero := reflect.Zero(t)
	return func(ctx *Context) (reflect.Value, error) {
		return zero, nil
	}, false, false, nil
}

// Compile-time interface checks for the context parameter matcher.
var (
	_ handler.Context = (*Context)(nil)
	_ context.Context = (*Context)(nil)
)
