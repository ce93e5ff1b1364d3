package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/handler"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/metrics"
	"github.com/MKhiriev/hefin/internal/server"
	"github.com/MKhiriev/hefin/internal/service"
	"github.com/MKhiriev/hefin/internal/store"
	"github.com/MKhiriev/hefin/internal/telemetry"
	"github.com/MKhiriev/hefin/internal/workers"
	"github.com/MKhiriev/hefin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const defaultShutdownTimeout = 10 * time.Second

func main() {
	fmt.Print(models.NewBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("hefin-server", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("hefin-server", cfg.App.IsDevelopment())
	log.Debug().Any("config", cfg).Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.App.Version, log)
	if err != nil {
		return fmt.Errorf("error setting up tracing: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		_ = storages.Close(ctx)
		return fmt.Errorf("error creating services: %w", err)
	}

	m := metrics.New()

	handlers, err := handler.NewHandlers(services, *cfg, m, log)
	if err != nil {
		_ = storages.Close(ctx)
		return fmt.Errorf("error creating handlers: %w", err)
	}

	backgroundWorkers, err := newWorkers(cfg.Workers, services, handlers, m, log)
	if err != nil {
		_ = storages.Close(ctx)
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		_ = storages.Close(ctx)
		return fmt.Errorf("error creating server: %w", err)
	}

	// verify the ledger once before accepting traffic
	backgroundWorkers.Run()
	backgroundWorkers.Start()

	serveErr := srv.RunServer()

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return errors.Join(
		serveErr,
		backgroundWorkers.Stop(shutdownCtx),
		storages.Close(shutdownCtx),
		shutdownTracing(shutdownCtx),
	)
}

func newWorkers(cfg config.Workers, services *service.Services, handlers *handler.Handlers, m *metrics.Metrics, log *logger.Logger) (*workers.Workers, error) {
	ws := workers.NewWorkers(log)

	var reporter workers.LedgerHealthReporter
	if handlers.GRPC != nil {
		reporter = handlers.GRPC
	}
	if err := ws.Add(cfg.LedgerVerifySchedule, workers.NewLedgerVerifier(services.RecordService, reporter, m, log)); err != nil {
		return nil, err
	}

	if handlers.HTTP != nil && handlers.HTTP.RateLimiter() != nil {
		janitor := workers.NewLimiterJanitor(handlers.HTTP.RateLimiter(), workers.DefaultLimiterIdle, m, log)
		if err := ws.Add(cfg.LimiterCleanupSchedule, janitor); err != nil {
			return nil, err
		}
	}

	return ws, nil
}
