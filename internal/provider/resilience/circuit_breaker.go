// Package resilience wraps upstream HTTP calls with a circuit breaker,
// optional retries and an outgoing rate limit, and keeps a registry of
// upstream health for the status endpoint.
package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

// CircuitBreakerConfig holds configuration for the circuit breaker.
type CircuitBreakerConfig struct {
	// Name identifies the upstream in logs and the registry.
	Name string

	// MaxRequests is the number of trial requests let through half-open.
	// Default: 1
	MaxRequests uint32

	// Interval clears the closed-state counts periodically. Zero keeps them
	// until the state changes.
	Interval time.Duration

	// Timeout is how long the circuit stays open before a trial request.
	// Default: 60 seconds
	Timeout time.Duration

	// ConsecutiveFailures trips the circuit on its own when set, whatever
	// the failure ratio. Default: 0 (ratio only)
	ConsecutiveFailures uint32

	// ReadyToTrip decides when to open. If nil, DefaultReadyToTrip is used
	// together with ConsecutiveFailures.
	ReadyToTrip func(counts gobreaker.Counts) bool

	// OnStateChange is called after every transition, after the transition
	// has been logged.
	OnStateChange func(name string, from gobreaker.State, to gobreaker.State)

	// Logger receives one line per transition.
	Logger zerolog.Logger
}

// DefaultCircuitBreakerConfig returns the breaker settings used for both
// upstreams.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:                name,
		MaxRequests:         1,
		Timeout:             60 * time.Second,
		ConsecutiveFailures: 5,
		ReadyToTrip:         DefaultReadyToTrip,
	}
}

// DefaultReadyToTrip opens the circuit once at least 5 requests have been
// made and half or more of them failed.
func DefaultReadyToTrip(counts gobreaker.Counts) bool {
	if counts.Requests < 5 {
		return false
	}
	return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
}

// IsUpstreamFailure reports whether err should count against the breaker.
// A caller that gave up is not the upstream's fault.
func IsUpstreamFailure(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled)
}

// NewCircuitBreaker creates a circuit breaker from cfg.
func NewCircuitBreaker[T any](cfg CircuitBreakerConfig) *gobreaker.CircuitBreaker[T] {
	ratio := cfg.ReadyToTrip
	if ratio == nil {
		ratio = DefaultReadyToTrip
	}
	consecutive := cfg.ConsecutiveFailures

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if consecutive > 0 && counts.ConsecutiveFailures >= consecutive {
				return true
			}
			return ratio(counts)
		},
		IsSuccessful: func(err error) bool {
			return !IsUpstreamFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			event := cfg.Logger.Info()
			if to == gobreaker.StateOpen {
				event = cfg.Logger.Warn()
			}
			event.Str("provider", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
			if cfg.OnStateChange != nil {
				cfg.OnStateChange(name, from, to)
			}
		},
	}

	return gobreaker.NewCircuitBreaker[T](settings)
}
