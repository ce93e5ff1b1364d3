package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/robfig/cron/v3"
)

type Workers struct {
	cron    *cron.Cron
	workers []Worker

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{
		cron: cron.New(
			cron.WithChain(cron.Recover(cronLogger{logger}), cron.SkipIfStillRunning(cronLogger{logger})),
		),
		logger: logger,
	}
}

// Add schedules worker with a standard cron spec or a descriptor such as
// "@every 10m".
func (w *Workers) Add(spec string, worker Worker) error {
	if _, err := w.cron.AddJob(spec, worker); err != nil {
		return fmt.Errorf("error scheduling worker with spec %q: %w", spec, err)
	}
	w.workers = append(w.workers, worker)
	return nil
}

// Run runs every worker once, in the order they were added.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Start starts the scheduler in its own goroutine.
func (w *Workers) Start() {
	w.logger.Info().Int("workers", len(w.workers)).Msg("starting workers")
	w.cron.Start()
}

// Stop stops the scheduler and waits for running jobs until ctx is done.
func (w *Workers) Stop(ctx context.Context) error {
	select {
	case <-w.cron.Stop().Done():
		w.logger.Info().Msg("workers stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("error waiting for workers to stop: %w", ctx.Err())
	}
}

// cronLogger adapts the zerolog wrapper to [cron.Logger].
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg(msg)
}
