// Package middleware provides HTTP middleware components for common
// cross-cutting concerns around compiled dispatch pipelines. It offers
// middleware for request ID generation, client IP extraction, request body
// limits, security headers, and request logging.
//
// All middleware produce dispatch.Middleware values and follow a consistent
// pattern:
//   - Default constructors for common use cases
//   - WithConfig constructors for advanced configuration
//   - Configuration structs with a Skip hook for exempting requests
//   - Context helpers for retrieving stored values
//
// Middleware are installed when endpoints are compiled and wrap every
// pipeline the build produces:
//
//	endpoints, err := dispatch.BuildAll(models,
//		dispatch.WithMiddleware(
//			middleware.RequestID(),
//			middleware.Logging(),
//		),
//	)
//
// # Request ID
//
// RequestID assigns a unique identifier to each request for tracing. The ID
// is stored in the request context and set on the response headers:
//
//	dispatch.WithMiddleware(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
//		UseExisting: true, // trust IDs from upstream proxies
//	}))
//
//	// Retrieve it anywhere the request context flows
//	if id, ok := middleware.GetRequestID(ctx); ok {
//		log.Info("processing", logger.RequestID(id))
//	}
//
// # Client IP
//
// ClientIP extracts the real client address from proxy headers and stores it
// in the request context. A ValidateFunc can reject addresses with a 403:
//
//	dispatch.WithMiddleware(middleware.ClientIPWithConfig(middleware.ClientIPConfig{
//		StoreInContext: true,
//		ValidateFunc: func(ctx *dispatch.Context, ip string) error {
//			if blocklist.Contains(ip) {
//				return errors.New("address blocked")
//			}
//			return nil
//		},
//	}))
//
// # Body Limit
//
// BodyLimit rejects oversized request bodies with 413 before the binding
// steps read them, and caps streamed bodies at the limit:
//
//	dispatch.WithMiddleware(middleware.BodyLimitWithSize(1 * middleware.MB))
//
// # Security Headers
//
// SecurityHeaders applies a configurable set of protective response headers.
// Predefined profiles cover the usual deployment postures:
//
//	dispatch.WithMiddleware(middleware.SecurityHeaders())            // balanced
//	dispatch.WithMiddleware(middleware.SecurityHeadersStrict())      // maximum
//	dispatch.WithMiddleware(middleware.SecurityHeadersWithConfig(middleware.DevelopmentSecurity))
//
// # Logging
//
// Logging emits one structured line per request with method, path, status,
// and duration, escalating the level for slow or failed requests:
//
//	dispatch.WithMiddleware(middleware.LoggingWithLogger(log))
package middleware
