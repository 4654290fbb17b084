package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/brandvoice-backend/internal/adapter/llm"
	"github.com/heartmarshall/brandvoice-backend/internal/config"
	"github.com/heartmarshall/brandvoice-backend/internal/service/analytics"
	"github.com/heartmarshall/brandvoice-backend/internal/service/transform"
	"github.com/heartmarshall/brandvoice-backend/internal/service/user"
	"github.com/heartmarshall/brandvoice-backend/internal/storage"
	"github.com/heartmarshall/brandvoice-backend/internal/transport/middleware"
	"github.com/heartmarshall/brandvoice-backend/internal/transport/rest"
)

// App holds the wired services. The server and the CLI share it.
type App struct {
	Config    *config.Config
	Log       *slog.Logger
	Store     *storage.Backend
	Generator llm.Generator

	Transform *transform.Service
	Analytics *analytics.Service
	Users     *user.Service
}

// New opens storage and the generation backend selected by cfg and wires the
// services around them. The caller must Close the returned App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	gen, err := llm.New(ctx, cfg.LLM, logger)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("app: %w", err)
	}

	return Assemble(cfg, logger, store, gen), nil
}

// Assemble wires services around an already opened backend and generator.
func Assemble(cfg *config.Config, logger *slog.Logger, store *storage.Backend, gen llm.Generator) *App {
	analyticsSvc := analytics.NewService(logger, store.Analytics)

	transformSvc := transform.NewService(logger, gen, store.Transformations, analyticsSvc, store.Tx, transform.Config{
		Model:               cfg.LLM.Model,
		Temperature:         cfg.LLM.Temperature,
		MaxTokens:           cfg.LLM.MaxTokens,
		DefaultHistoryLimit: cfg.History.DefaultLimit,
		MaxHistoryLimit:     cfg.History.MaxLimit,
	})

	return &App{
		Config:    cfg,
		Log:       logger,
		Store:     store,
		Generator: gen,
		Transform: transformSvc,
		Analytics: analyticsSvc,
		Users:     user.NewService(logger, store.Users, cfg.User.PasswordHashCost),
	}
}

// Handler returns the full HTTP handler: routes wrapped in the standard
// middleware chain.
func (a *App) Handler() http.Handler {
	router := rest.NewRouter(rest.Handlers{
		Transform: rest.NewTransformHandler(a.Transform, a.Log),
		Analytics: rest.NewAnalyticsHandler(a.Analytics, a.Log),
		Health:    rest.NewHealthHandler(a.Store.Health, a.Store.Name, BuildVersion()),
	})
	return middleware.Standard(a.Log, a.Config.Server, a.Config.CORS)(router)
}

// Close releases the generator and storage.
func (a *App) Close() error {
	return errors.Join(a.Generator.Close(), a.Store.Close())
}

// Run is the server entry point. It loads configuration, wires the
// application, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application", startupAttrs(cfg)...)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("close application", slog.String("error", err.Error()))
		}
	}()

	return Serve(ctx, cfg.Server, a.Handler(), logger)
}

// Serve runs an HTTP server on cfg.Addr() until ctx is cancelled, then
// shuts it down within cfg.ShutdownTimeout.
func Serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return nil
}

func shutdownTimeout(cfg config.ServerConfig) time.Duration {
	if cfg.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return cfg.ShutdownTimeout
}
