package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ContextExtractor pulls a single attribute out of a context. Returning
// false skips the attribute for that record.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// Option configures the logger built by New.
type Option func(*config)

type config struct {
	level      slog.Level
	json       bool
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// New creates a configured *slog.Logger. Without options it logs text at
// info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var h slog.Handler
	if cfg.json {
		h = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	if len(cfg.extractors) > 0 {
		h = &contextHandler{next: h, extractors: cfg.extractors}
	}

	return slog.New(h)
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(cfg *config) {
		cfg.level = level
	}
}

// WithJSONFormatter switches output to JSON records.
func WithJSONFormatter() Option {
	return func(cfg *config) {
		cfg.json = true
	}
}

// WithTextFormatter switches output to logfmt-style text records.
func WithTextFormatter() Option {
	return func(cfg *config) {
		cfg.json = false
	}
}

// WithOutput sets the destination writer.
func WithOutput(w io.Writer) Option {
	return func(cfg *config) {
		if w != nil {
			cfg.output = w
		}
	}
}

// WithAttr attaches attributes to every record the logger emits.
func WithAttr(attrs ...slog.Attr) Option {
	return func(cfg *config) {
		cfg.attrs = append(cfg.attrs, attrs...)
	}
}

// WithDevelopment configures text output at debug level tagged with the
// application name.
func WithDevelopment(app string) Option {
	return func(cfg *config) {
		cfg.json = false
		cfg.level = slog.LevelDebug
		cfg.attrs = append(cfg.attrs, slog.String("app", app))
	}
}

// WithProduction configures JSON output at info level tagged with the
// application name.
func WithProduction(app string) Option {
	return func(cfg *config) {
		cfg.json = true
		cfg.level = slog.LevelInfo
		cfg.attrs = append(cfg.attrs, slog.String("app", app))
	}
}

// WithStaging configures JSON output at debug level tagged with the
// application name.
func WithStaging(app string) Option {
	return func(cfg *config) {
		cfg.json = true
		cfg.level = slog.LevelDebug
		cfg.attrs = append(cfg.attrs, slog.String("app", app))
	}
}

// WithContextValue extracts a context value by key into an attribute of
// the same record. Values missing from the context are skipped.
func WithContextValue(attrKey string, ctxKey any) Option {
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		v := ctx.Value(ctxKey)
		if v == nil {
			return slog.Attr{}, false
		}
		return slog.Any(attrKey, v), true
	})
}

// WithContextExtractors adds custom context extraction logic.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(cfg *config) {
		cfg.extractors = append(cfg.extractors, extractors...)
	}
}

// contextHandler decorates a handler with context attribute injection.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, extract := range h.extractors {
		if attr, ok := extract(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
