package middleware

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/dispatchkit/core/dispatch"
	"github.com/dmitrymomot/dispatchkit/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *dispatch.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates a request logging middleware with default configuration.
// It logs one line per request at info level.
func Logging() dispatch.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger(log *slog.Logger) dispatch.Middleware {
	return LoggingWithConfig(LoggingConfig{
		Logger: log,
	})
}

// LoggingWithConfig creates a request logging middleware with custom
// configuration. Each request is logged with method, path, status, and
// duration. Slow requests are raised to warning level, pipeline errors to
// error level. The status attribute is only present when the pipeline wrote
// a response; failed requests carry the error instead and are rendered by
// the endpoint's error handler after this middleware returns.
func LoggingWithConfig(cfg LoggingConfig) dispatch.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next dispatch.Invoker) dispatch.Invoker {
		return func(ctx *dispatch.Context) error {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			err := next(ctx)
			elapsed := time.Since(start)

			r := ctx.Request()
			attrs := []any{
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Latency(elapsed),
				logger.Component(cfg.Component),
			}
			if sw, ok := ctx.ResponseWriter().(interface {
				Status() int
				Written() bool
			}); ok && sw.Written() {
				attrs = append(attrs, logger.StatusCode(sw.Status()))
			}
			if id, ok := GetRequestID(ctx); ok {
				attrs = append(attrs, logger.RequestID(id))
			}

			level := cfg.LogLevel
			switch {
			case err != nil:
				level = slog.LevelError
				attrs = append(attrs, logger.Error(err))
			case elapsed >= cfg.SlowRequestThreshold:
				level = slog.LevelWarn
			}

			cfg.Logger.Log(ctx, level, "request", attrs...)

			return err
		}
	}
}
