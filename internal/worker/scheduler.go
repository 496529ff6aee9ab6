package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
)

// Scheduler runs the warm-up job on a fixed interval.
type Scheduler struct {
	scheduler *gocron.Scheduler
	job       *WarmupJob
	interval  time.Duration
	logger    zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a Scheduler. A non-positive interval means 15 minutes.
func NewScheduler(job *WarmupJob, interval time.Duration, logger zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		job:       job,
		interval:  interval,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start schedules the job, runs it once immediately and returns. Runs never
// overlap: a run still in progress when the next one is due delays it.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(func() {
		s.logger.Debug().Msg("scheduled warm-up triggered")
		s.job.Run(s.ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule warm-up: %w", err)
	}

	s.scheduler.StartAsync()
	s.logger.Info().Dur("interval", s.interval).Msg("warm-up scheduler started")
	return nil
}

// Stop cancels any run in progress and stops future runs.
func (s *Scheduler) Stop() {
	s.cancel()
	s.scheduler.Stop()
}
