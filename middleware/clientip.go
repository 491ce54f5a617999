package middleware

import (
	"context"

	"github.com/dmitrymomot/dispatchkit/core/dispatch"
	"github.com/dmitrymomot/dispatchkit/core/response"
	"github.com/dmitrymomot/dispatchkit/pkg/clientip"
)

// clientIPContextKey is used as a key for storing client IP in request context.
type clientIPContextKey struct{}

// ClientIPConfig configures the client IP extraction middleware.
type ClientIPConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *dispatch.Context) bool
	// StoreInContext determines whether to store the extracted IP in request context
	StoreInContext bool
	// HeaderName specifies the response header name for the client IP (default: "X-Client-IP")
	HeaderName string
	// StoreInHeader determines whether to include the IP in response headers
	StoreInHeader bool
	// ValidateFunc allows custom validation of the extracted IP address
	ValidateFunc func(ctx *dispatch.Context, ip string) error
}

// ClientIP creates a client IP extraction middleware with default configuration.
// By default, it stores the extracted IP in the request context.
func ClientIP() dispatch.Middleware {
	return ClientIPWithConfig(ClientIPConfig{
		StoreInContext: true,
	})
}

// ClientIPWithConfig creates a client IP extraction middleware with custom
// configuration. It extracts the real client IP address from proxy headers
// (X-Forwarded-For, X-Real-IP, etc.) and optionally stores it in context,
// validates it, or includes it in response headers. Validation failures stop
// the pipeline with a 403.
func ClientIPWithConfig(cfg ClientIPConfig) dispatch.Middleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Client-IP"
	}

	// Default to storing in context if no other action is configured
	if !cfg.StoreInContext && !cfg.StoreInHeader && cfg.ValidateFunc == nil {
		cfg.StoreInContext = true
	}

	return func(next dispatch.Invoker) dispatch.Invoker {
		return func(ctx *dispatch.Context) error {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			ip := clientip.GetIP(ctx.Request())

			if cfg.StoreInContext {
				ctx.SetValue(clientIPContextKey{}, ip)
			}

			if cfg.ValidateFunc != nil {
				if err := cfg.ValidateFunc(ctx, ip); err != nil {
					return response.ErrForbidden.WithError(err)
				}
			}

			if cfg.StoreInHeader {
				ctx.ResponseWriter().Header().Set(cfg.HeaderName, ip)
			}

			return next(ctx)
		}
	}
}

// GetClientIP retrieves the client IP from the request context.
// Returns the IP and a boolean indicating whether it was found.
func GetClientIP(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPContextKey{}).(string)
	return ip, ok
}
