// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers context-aware attribute extraction, environment-specific configurations,
// and a set of pre-built attributes for common logging scenarios.
//
// # Features
//
//   - Built on Go's standard slog for compatibility and performance
//   - Context-aware attribute extraction for request-scoped data
//   - Environment-specific configurations (development, staging, production)
//   - Attribute helpers for errors, timing, HTTP, and dispatch concerns
//   - Support for both JSON and text output formats
//   - Type-safe attribute creation with nil safety
//
// # Basic Usage
//
// Create loggers using the factory function with various configuration options:
//
//	import "github.com/dmitrymomot/dispatchkit/core/logger"
//
//	// Create a development logger
//	log := logger.New(
//		logger.WithDevelopment("myapp"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	// Create a production logger
//	log := logger.New(
//		logger.WithProduction("myapp"),
//	)
//
//	// Use the logger
//	log.Info("endpoint compiled",
//		logger.Endpoint("UserHandler.Get"),
//		logger.Route("GET /users/{id}"),
//	)
//
// # Context-Aware Logging
//
// Extract and inject attributes automatically from context values:
//
//	log := logger.New(
//		logger.WithProduction("myapp"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
//	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-12345")
//	log.InfoContext(ctx, "processing request")
//	// Output: {"level":"INFO","msg":"processing request","request_id":"req-12345"}
//
// Custom extraction logic plugs in the same way:
//
//	func sessionExtractor(ctx context.Context) (slog.Attr, bool) {
//		if s, ok := ctx.Value(sessionKey{}).(*Session); ok {
//			return slog.String("session_id", s.ID), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(
//		logger.WithProduction("myapp"),
//		logger.WithContextExtractors(sessionExtractor),
//	)
//
// # Attribute Helpers
//
// Helper functions keep attribute keys consistent across the application:
//
//	log.Error("pipeline failed",
//		logger.Error(err),
//		logger.Endpoint(ep.Name),
//		logger.Component("dispatch"),
//	)
//
//	log.Info("request served",
//		logger.Method("POST"),
//		logger.Path("/api/users"),
//		logger.StatusCode(201),
//		logger.Latency(time.Since(start)),
//	)
package logger
