package simple

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/dispatchkit/core/config"
	"github.com/dmitrymomot/dispatchkit/core/dispatch"
	"github.com/dmitrymomot/dispatchkit/core/logger"
	"github.com/dmitrymomot/dispatchkit/core/scope"
	"github.com/dmitrymomot/dispatchkit/core/server"
	"github.com/dmitrymomot/dispatchkit/middleware"
)

type App struct {
	config Config
	logger *slog.Logger
	scope  *scope.Scope
	server *server.Server
	mux    *http.ServeMux
}

type AppOption func(*App) error

func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		logger: newLogger(cfg),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.scope == nil {
		app.scope = scope.New()
		scope.Register(app.scope, NewTaskStore())
	}

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	endpoints, err := dispatch.BuildAll(Models{},
		dispatch.WithScope(app.scope),
		dispatch.WithLogger(app.logger),
		dispatch.WithMiddleware(
			middleware.RequestIDWithConfig(middleware.RequestIDConfig{UseExisting: true}),
			middleware.LoggingWithLogger(app.logger),
		),
	)
	if err != nil {
		return nil, err
	}

	app.mux = http.NewServeMux()
	dispatch.Mount(app.mux, endpoints)

	return app, nil
}

// Handler returns the mounted HTTP handler.
func (app *App) Handler() http.Handler {
	return app.mux
}

// Run starts the HTTP server and blocks until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	return app.server.Start(ctx, app.mux)
}

func newLogger(cfg Config) *slog.Logger {
	if cfg.Env == "production" {
		return logger.New(logger.WithProduction(cfg.AppName))
	}
	return logger.New(logger.WithDevelopment(cfg.AppName))
}

func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = log
		return nil
	}
}

func WithScope(s *scope.Scope) AppOption {
	return func(app *App) error {
		if s == nil {
			return errors.New("scope cannot be nil")
		}
		app.scope = s
		return nil
	}
}

func WithServer(srv *server.Server) AppOption {
	return func(app *App) error {
		if srv == nil {
			return errors.New("server cannot be nil")
		}
		app.server = srv
		return nil
	}
}
