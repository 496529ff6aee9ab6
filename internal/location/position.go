package location

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// ErrPositionDenied is returned by a PositionSource that is not allowed to
// report a position.
var ErrPositionDenied = errors.New("position denied")

// PositionSource acquires the caller's current position.
type PositionSource interface {
	CurrentPosition(ctx context.Context) (Coordinates, error)
}

// PositionSourceFunc adapts a function to PositionSource.
type PositionSourceFunc func(ctx context.Context) (Coordinates, error)

// CurrentPosition calls f.
func (f PositionSourceFunc) CurrentPosition(ctx context.Context) (Coordinates, error) {
	return f(ctx)
}

// Fix is a resolved position and where it came from.
type Fix struct {
	Coordinates Coordinates `json:"coordinates"`
	AcquiredAt  time.Time   `json:"acquiredAt"`
	Fallback    bool        `json:"fallback"`
}

// LocatorConfig holds configuration for a Locator.
type LocatorConfig struct {
	// Timeout bounds a single acquisition (default: 10s).
	Timeout time.Duration

	// MaximumAge is how long a previous fix may be reused (default: 5m).
	MaximumAge time.Duration

	// Default is returned on denial, error or timeout (default: DefaultCoordinates).
	Default *Coordinates

	Clock  clockwork.Clock
	Logger zerolog.Logger
}

// Locator resolves the current position and never blocks longer than its
// timeout: any failure yields the default location.
type Locator struct {
	timeout    time.Duration
	maximumAge time.Duration
	fallback   Coordinates
	clock      clockwork.Clock
	logger     zerolog.Logger

	mu   sync.Mutex
	last *Fix
}

// NewLocator creates a Locator.
func NewLocator(cfg LocatorConfig) *Locator {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	maximumAge := cfg.MaximumAge
	if maximumAge == 0 {
		maximumAge = 5 * time.Minute
	}
	fallback := DefaultCoordinates
	if cfg.Default != nil {
		fallback = *cfg.Default
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Locator{
		timeout:    timeout,
		maximumAge: maximumAge,
		fallback:   fallback,
		clock:      clock,
		logger:     cfg.Logger,
	}
}

// Locate returns a recent cached fix, a fresh fix from src, or the default
// location.
func (l *Locator) Locate(ctx context.Context, src PositionSource) Fix {
	now := l.clock.Now()

	l.mu.Lock()
	if l.last != nil && now.Sub(l.last.AcquiredAt) < l.maximumAge {
		fix := *l.last
		l.mu.Unlock()
		return fix
	}
	l.mu.Unlock()

	if src == nil {
		return l.fallbackFix(now)
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	type outcome struct {
		coords Coordinates
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		c, err := src.CurrentPosition(ctx)
		done <- outcome{coords: c, err: err}
	}()

	select {
	case <-ctx.Done():
		l.logger.Warn().Err(ctx.Err()).Msg("position acquisition timed out, using default location")
		return l.fallbackFix(now)
	case o := <-done:
		if o.err != nil || !o.coords.Valid() {
			l.logger.Warn().Err(o.err).Msg("position unavailable, using default location")
			return l.fallbackFix(now)
		}
		fix := Fix{Coordinates: o.coords, AcquiredAt: now}
		l.mu.Lock()
		l.last = &fix
		l.mu.Unlock()
		return fix
	}
}

func (l *Locator) fallbackFix(now time.Time) Fix {
	return Fix{Coordinates: l.fallback, AcquiredAt: now, Fallback: true}
}
