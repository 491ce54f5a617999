package binder

import (
	"github.com/dmitrymomot/dispatchkit/core/handler"
)

// Lookup retrieves the raw string values for a key from one region of the
// request. The boolean reports presence: an absent key is not an error, it
// binds the parameter's zero value.
type Lookup func(ctx handler.Context, key string) ([]string, bool)

// Query looks values up in the URL query string.
func Query() Lookup {
	return func(ctx handler.Context, key string) ([]string, bool) {
		values, ok := ctx.Request().URL.Query()[key]
		return values, ok && len(values) > 0
	}
}

// Header looks values up in the request headers using canonical keys.
func Header() Lookup {
	return func(ctx handler.Context, key string) ([]string, bool) {
		values := ctx.Request().Header.Values(key)
		return values, len(values) > 0
	}
}

// Route looks a value up in the route values extracted by the routing
// engine. Route values are single-valued; an empty value counts as absent.
func Route() Lookup {
	return func(ctx handler.Context, key string) ([]string, bool) {
		value := ctx.Param(key)
		if value == "" {
			return nil, false
		}
		return []string{value}, true
	}
}

// Cookie looks a value up in the named request cookie.
func Cookie() Lookup {
	return func(ctx handler.Context, key string) ([]string, bool) {
		c, err := ctx.Request().Cookie(key)
		if err != nil || c.Value == "" {
			return nil, false
		}
		return []string{c.Value}, true
	}
}

// Form looks values up in the parsed form fields. The dispatch readiness
// step populates the form before any form-bound parameter is evaluated.
func Form() Lookup {
	return func(ctx handler.Context, key string) ([]string, bool) {
		values, ok := ctx.Request().PostForm[key]
		return values, ok && len(values) > 0
	}
}
