package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Job is a unit of scheduled work.
type Job interface {
	Run(ctx context.Context) error
}

// Scheduler runs registered jobs daily at fixed local times.
type Scheduler struct {
	cron   *gocron.Scheduler
	logger *slog.Logger
}

// New creates a scheduler operating in loc. A nil logger falls back to
// slog.Default.
func New(loc *time.Location, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:   gocron.NewScheduler(loc),
		logger: logger,
	}
}

// Daily registers job to run every day at the given HH:MM local time.
// Job errors are logged, not propagated: one failed day must not unschedule
// the job.
func (s *Scheduler) Daily(at, name string, job Job) error {
	_, err := s.cron.Every(1).Day().At(at).Do(func() {
		s.logger.Info("scheduled job starting", "job", name)
		if err := job.Run(context.Background()); err != nil {
			s.logger.Error("scheduled job failed", "job", name, "error", err)
			return
		}
		s.logger.Info("scheduled job finished", "job", name)
	})
	if err != nil {
		return fmt.Errorf("schedule %s at %s: %w", name, at, err)
	}
	return nil
}

// Start begins executing registered jobs asynchronously.
func (s *Scheduler) Start() {
	s.cron.StartAsync()
	s.logger.Info("scheduler started", "jobs", s.cron.Len())
}

// Stop halts the scheduler and waits for running jobs to return.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("scheduler stopped")
}

// Len reports the number of registered jobs.
func (s *Scheduler) Len() int {
	return s.cron.Len()
}
