package dispatch

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/dispatchkit/core/binder"
	"github.com/dmitrymomot/dispatchkit/core/response"
	"github.com/dmitrymomot/dispatchkit/core/scope"
)

// defaultMaxFormMemory bounds the in-memory portion of multipart forms.
const defaultMaxFormMemory = 32 << 20 // 32 MB

// ErrorHandler renders a pipeline failure for the client. It runs only
// when no response bytes have been written yet.
type ErrorHandler func(ctx *Context, err error)

// Option configures compilation.
type Option func(*config)

type config struct {
	scope         *scope.Scope
	formatter     binder.Formatter
	errorHandler  ErrorHandler
	middlewares   []Middleware
	logger        *slog.Logger
	maxFormMemory int64
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		scope:         scope.New(),
		formatter:     binder.JSON(),
		errorHandler:  defaultErrorHandler,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
		maxFormMemory: defaultMaxFormMemory,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// A registered formatter takes precedence over the default one, so
	// body decoding stays an injected capability.
	if f, err := scope.Resolve[binder.Formatter](cfg.scope); err == nil {
		cfg.formatter = f
	}

	return cfg
}

// WithScope sets the root scope endpoints resolve services from. Each
// request derives a child of it.
func WithScope(s *scope.Scope) Option {
	return func(cfg *config) {
		if s != nil {
			cfg.scope = s
		}
	}
}

// WithFormatter sets the body formatter used when no formatter is
// registered in the scope. The default decodes JSON.
func WithFormatter(f binder.Formatter) Option {
	return func(cfg *config) {
		if f != nil {
			cfg.formatter = f
		}
	}
}

// WithErrorHandler sets a custom error handler for compiled endpoints.
func WithErrorHandler(h ErrorHandler) Option {
	return func(cfg *config) {
		if h != nil {
			cfg.errorHandler = h
		}
	}
}

// WithMiddleware adds middleware around every compiled pipeline.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(cfg *config) {
		cfg.middlewares = append(cfg.middlewares, middlewares...)
	}
}

// WithLogger sets a custom logger for compiled endpoints.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithMaxFormMemory sets the in-memory limit passed to ParseMultipartForm.
func WithMaxFormMemory(n int64) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxFormMemory = n
		}
	}
}

// defaultErrorHandler renders failures as structured JSON errors.
func defaultErrorHandler(ctx *Context, err error) {
	response.JSONErrorHandler(ctx, err)
}
