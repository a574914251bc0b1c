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
	_ "time/tzdata"

	httpadapter "sales-campaigns/internal/adapter/http"
	"sales-campaigns/internal/adapter/postgres"
	"sales-campaigns/internal/adapter/scheduler"
	"sales-campaigns/internal/adapter/usecase"
	"sales-campaigns/internal/config"
	"sales-campaigns/internal/core/port"
	"sales-campaigns/internal/db"
)

// main is the entry point of the campaign service. It loads configuration,
// optionally migrates and seeds the database, wires repositories and the
// use case, then serves HTTP and runs the status watcher until a
// termination signal arrives.
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

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	settings, err := pricingSettings(cfg)
	if err != nil {
		logger.Error("invalid pricing config", slog.Any("error", err))
		return
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	svc := usecase.NewCampaignUseCase(
		postgres.NewCampaignRepository(pool),
		postgres.NewProductRepository(pool),
		port.ClockFunc(time.Now),
		settings,
		logger,
	)

	if cfg.Scheduler.Enabled {
		watcher := scheduler.NewStatusWatcher(svc, logger, cfg.Scheduler.Schedule, settings.Location)
		if err = watcher.Start(); err != nil {
			logger.Error("scheduler error", slog.Any("error", err))
			return
		}
		defer watcher.Stop()
	}

	notice := port.StoreNotice{Enabled: cfg.Notice.Enabled, Text: cfg.Notice.Text}
	handler := httpadapter.NewHandler(svc, notice, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

func pricingSettings(cfg config.Config) (usecase.Settings, error) {
	loc, err := cfg.Pricing.Location()
	if err != nil {
		return usecase.Settings{}, err
	}
	tag, err := cfg.Pricing.Tag()
	if err != nil {
		return usecase.Settings{}, err
	}
	unit, err := cfg.Pricing.Unit()
	if err != nil {
		return usecase.Settings{}, err
	}
	return usecase.Settings{Location: loc, Language: tag, Currency: unit}, nil
}
