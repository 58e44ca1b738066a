package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "campaign-insights/internal/adapter/http"
	"campaign-insights/internal/adapter/memory"
	"campaign-insights/internal/adapter/postgres"
	"campaign-insights/internal/adapter/random"
	"campaign-insights/internal/adapter/scheduler"
	"campaign-insights/internal/adapter/usecase"
	"campaign-insights/internal/config"
	"campaign-insights/internal/config/configs"
	"campaign-insights/internal/core/port"
	"campaign-insights/internal/db"
)

// main is the entry point of the dashboard server. It loads configuration,
// picks the dashboard repository, seeds it from the random data source,
// starts the periodic refresher and serves the HTTP API. On SIGINT or
// SIGTERM it stops the refresher and shuts the server down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage init error", slog.Any("error", err))
		return
	}
	defer closeRepo()

	seed := cfg.Dashboard.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := random.NewSource(random.NewSeeded(seed), cfg.Dashboard.RowCount)
	seeded, err := db.Seed(ctx, repo, source)
	if err != nil {
		logger.Error("seed error", slog.Any("error", err))
		return
	}
	if seeded {
		logger.Info("dashboard seeded", slog.Int("rows", cfg.Dashboard.RowCount), slog.Int64("seed", seed))
	}

	svc := usecase.NewDashboardUseCase(repo, source, usecase.Options{
		PageSize: cfg.Dashboard.PageSize,
		Locale:   cfg.Dashboard.LanguageTag(),
	})

	refresher := scheduler.NewRefresher(cfg.Dashboard.RefreshInterval, svc.Refresh, logger)
	refresher.Start(ctx)
	defer refresher.Stop()

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("server listening",
		slog.Int("port", int(cfg.HTTP.Port)),
		slog.String("storage", cfg.Storage.DriverName()),
		slog.Duration("refresh_interval", cfg.Dashboard.RefreshInterval))
	if err = serve(ctx, srv, cfg.HTTP.ShutdownTimeout); err != nil {
		logger.Error("server error",
			slog.Any("error", err),
			slog.Int64("exports_in_flight", handler.InFlightExports()))
		return
	}
	exitCode = 0
	logger.Info("server gracefully stopped")
}

// serve runs srv until ctx is done, then shuts it down within timeout. It
// returns the listen error when the server could not start or stopped on
// its own, and nil only after a clean shutdown.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openRepository builds the configured dashboard repository. The returned
// close function is always safe to call.
func openRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.DashboardRepository, func(), error) {
	if cfg.Storage.DriverName() != configs.DriverPostgres {
		return memory.NewDashboardRepository(), func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, func() {}, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, func() {}, err
	}
	return postgres.NewDashboardRepository(pool), pool.Close, nil
}
