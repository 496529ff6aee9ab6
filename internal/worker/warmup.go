package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/observability"
)

// Warm-up outcomes, as recorded in the warmup_runs_total metric.
const (
	OutcomeSuccess = "success"
	OutcomePartial = "partial"
	OutcomeFailed  = "failed"
)

// ReadingFetcher is the part of airquality.Gateway the job needs.
type ReadingFetcher interface {
	FetchReading(ctx context.Context, query string) airquality.Reading
}

// WarmupJobConfig holds configuration for creating a WarmupJob.
type WarmupJobConfig struct {
	Config  WarmupConfig
	Fetcher ReadingFetcher
	Clock   clockwork.Clock
	Logger  zerolog.Logger
	Metrics *observability.Metrics
}

// WarmupJob fetches the popular cities through the gateway so their
// readings land in the cache.
type WarmupJob struct {
	config  WarmupConfig
	fetcher ReadingFetcher
	clock   clockwork.Clock
	logger  zerolog.Logger
	metrics *observability.Metrics

	mu    sync.RWMutex
	stats WarmupStats
}

// WarmupStats accumulates over every run of a job.
type WarmupStats struct {
	Runs            int64
	CitiesLive      int64
	CitiesFallback  int64
	LastRunAt       time.Time
	LastRunDuration time.Duration
	LastOutcome     string
}

// NewWarmupJob creates a WarmupJob.
func NewWarmupJob(cfg WarmupJobConfig) *WarmupJob {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &WarmupJob{
		config:  cfg.Config.withDefaults(),
		fetcher: cfg.Fetcher,
		clock:   clock,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// WarmupResult describes one run.
type WarmupResult struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Total     int
	// Live counts cities the upstream answered; Fallback counts cities
	// served from stale cache or synthesized.
	Live     int
	Fallback int
	// Skipped counts cities not attempted because ctx ended.
	Skipped  int
	Outcome  string
	Readings map[string]airquality.Reading
}

// Run fetches every configured city with a bounded pool of workers.
func (j *WarmupJob) Run(ctx context.Context) *WarmupResult {
	return j.run(ctx, j.config.Cities, j.config.Concurrency)
}

// HealthCheck fetches the first configured city alone and fails unless the
// upstream answered live.
func (j *WarmupJob) HealthCheck(ctx context.Context) error {
	city := j.config.Cities[0]
	result := j.run(ctx, []string{city}, 1)
	if result.Live == 0 {
		source := airquality.Source("none")
		if r, ok := result.Readings[city]; ok {
			source = r.Source
		}
		return fmt.Errorf("health check for %s served %s reading", city, source)
	}
	return nil
}

type cityResult struct {
	city    string
	reading airquality.Reading
}

func (j *WarmupJob) run(ctx context.Context, cities []string, concurrency int) *WarmupResult {
	start := j.clock.Now()
	result := &WarmupResult{
		StartTime: start,
		Total:     len(cities),
		Readings:  make(map[string]airquality.Reading, len(cities)),
	}

	j.logger.Info().
		Int("cities", len(cities)).
		Int("concurrency", concurrency).
		Msg("starting cache warm-up")

	queue := make(chan string, len(cities))
	results := make(chan cityResult, len(cities))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.worker(ctx, queue, results)
		}()
	}

	for _, c := range cities {
		queue <- c
	}
	close(queue)

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		result.Readings[r.city] = r.reading
		if r.reading.Source == airquality.SourceLive {
			result.Live++
		} else {
			result.Fallback++
		}
	}

	result.Skipped = result.Total - result.Live - result.Fallback
	result.EndTime = j.clock.Now()
	result.Duration = result.EndTime.Sub(start)
	result.Outcome = outcome(result)

	j.record(result)
	j.metrics.ObserveWarmup(result.Outcome)

	event := j.logger.Info()
	if result.Outcome != OutcomeSuccess {
		event = j.logger.Warn()
	}
	event.
		Dur("duration", result.Duration).
		Int("live", result.Live).
		Int("fallback", result.Fallback).
		Int("skipped", result.Skipped).
		Str("outcome", result.Outcome).
		Msg("cache warm-up completed")

	return result
}

func (j *WarmupJob) worker(ctx context.Context, queue <-chan string, results chan<- cityResult) {
	for city := range queue {
		if ctx.Err() != nil {
			return
		}

		cityCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
		reading := j.fetcher.FetchReading(cityCtx, city)
		cancel()

		if reading.Source != airquality.SourceLive {
			j.logger.Debug().Str("city", city).Str("source", string(reading.Source)).Msg("warm-up served fallback reading")
		}
		results <- cityResult{city: city, reading: reading}
	}
}

func outcome(r *WarmupResult) string {
	switch {
	case r.Total > 0 && r.Live == r.Total:
		return OutcomeSuccess
	case r.Live > 0:
		return OutcomePartial
	default:
		return OutcomeFailed
	}
}

func (j *WarmupJob) record(r *WarmupResult) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stats.Runs++
	j.stats.CitiesLive += int64(r.Live)
	j.stats.CitiesFallback += int64(r.Fallback)
	j.stats.LastRunAt = r.EndTime
	j.stats.LastRunDuration = r.Duration
	j.stats.LastOutcome = r.Outcome
}

// Stats returns a copy of the accumulated statistics.
func (j *WarmupJob) Stats() WarmupStats {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.stats
}
