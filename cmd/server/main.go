// Package main is the entry point for the task service. It loads the profile
// config, opens the configured store, wires the graph with samber/do v2 and
// serves HTTP until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-task-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-task-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-task-service/internal/adapters/store/sqlite"

	"github.com/jsamuelsen11/go-task-service/internal/app"
	"github.com/jsamuelsen11/go-task-service/internal/platform/auth"
	"github.com/jsamuelsen11/go-task-service/internal/platform/cache"
	"github.com/jsamuelsen11/go-task-service/internal/platform/config"
	"github.com/jsamuelsen11/go-task-service/internal/platform/health"
	"github.com/jsamuelsen11/go-task-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-task-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

const (
	otelShutdownTimeout = 5 * time.Second
	storageOpenTimeout  = 10 * time.Second
	healthCheckTimeout  = 2 * time.Second

	tokenIssuer = "go-task-service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr, slog.String("service", cfg.Telemetry.ServiceName))

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
		logger.Info("shutdown complete")
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	stores, err := openStores(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := stores.Close(); err != nil {
			logger.Error("storage close error", slog.Any("error", err))
		}
	}()
	logger.Info("storage ready", slog.String("driver", cfg.Storage.Driver))

	do.ProvideValue(injector, stores.tasks)
	do.ProvideValue(injector, stores.users)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, checker := range stores.checkers {
		registry.Register(checker)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Blocks until a shutdown signal arrives and in-flight requests drain.
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}

// storage bundles the task and user stores selected by storage.driver.
type storage struct {
	tasks    ports.TaskStore
	users    ports.UserStore
	checkers []ports.HealthChecker
	close    func() error
}

// Close releases the backing database, if any.
func (s *storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func openStores(ctx context.Context, cfg config.StorageConfig) (*storage, error) {
	switch cfg.Driver {
	case "sqlite":
		openCtx, cancel := context.WithTimeout(ctx, storageOpenTimeout)
		defer cancel()

		db, err := sqlite.Open(openCtx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &storage{
			tasks:    db.TaskStore(),
			users:    db.UserStore(),
			checkers: []ports.HealthChecker{db},
			close:    db.Close,
		}, nil
	default:
		tasks := memory.NewTaskStore()
		return &storage{
			tasks:    tasks,
			users:    memory.NewUserStore(),
			checkers: []ports.HealthChecker{tasks},
		}, nil
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*cache.Cache, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return cache.New(cfg.Cache.DefaultTTL, cache.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(_ do.Injector) (*auth.TokenIssuer, error) {
		return auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tokenIssuer)
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		tasks := do.MustInvoke[ports.TaskStore](i)
		users := do.MustInvoke[ports.UserStore](i)
		c := do.MustInvoke[*cache.Cache](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		svc := app.NewTaskService(tasks, users, c, logger, app.WithTaskMetrics(metrics))
		return app.NewTaskGuard(svc, cfg.Tasks.BulkCheckWorkers, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		users := do.MustInvoke[ports.UserStore](i)
		tokens := do.MustInvoke[*auth.TokenIssuer](i)
		return app.NewAuthService(users, auth.NewBcryptHasher(cfg.Auth.BcryptCost), tokens, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		svc := do.MustInvoke[ports.TaskService](i)
		return handlers.NewTaskHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AuthHandler, error) {
		svc := do.MustInvoke[ports.AuthService](i)
		return handlers.NewAuthHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		taskH := do.MustInvoke[*handlers.TaskHandler](i)
		authH := do.MustInvoke[*handlers.AuthHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		tokens := do.MustInvoke[*auth.TokenIssuer](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		api := middleware.Chain(
			middleware.Timeout(cfg.Server.RequestTimeout),
			middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		)

		return adapthttp.NewRouter(taskH, authH, healthH, api, middleware.Identity(tokens),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
