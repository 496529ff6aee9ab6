// Package worker keeps the reading cache warm for the popular cities so
// that the first request after a quiet period is not a network round trip.
package worker

import (
	"time"

	"github.com/airscope/airscope/internal/location"
)

// WarmupConfig holds configuration for the warm-up job.
type WarmupConfig struct {
	// Cities are the place names fetched on every run.
	// If empty, uses DefaultWarmupCities.
	Cities []string

	// Concurrency is the number of cities fetched at once.
	// Default: 3
	Concurrency int

	// Timeout bounds the fetch of a single city.
	// Default: 20 seconds
	Timeout time.Duration
}

// DefaultWarmupConfig returns the default warm-up configuration.
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Cities:      DefaultWarmupCities(),
		Concurrency: 3,
		Timeout:     20 * time.Second,
	}
}

// DefaultWarmupCities returns the popular cities of the built-in gazetteer,
// in the order they are suggested.
func DefaultWarmupCities() []string {
	popular := location.NewResolver(nil).PopularCities()
	cities := make([]string, 0, len(popular))
	for _, e := range popular {
		cities = append(cities, e.Name)
	}
	return cities
}

func (c WarmupConfig) withDefaults() WarmupConfig {
	def := DefaultWarmupConfig()
	if len(c.Cities) == 0 {
		c.Cities = def.Cities
	}
	if c.Concurrency <= 0 {
		c.Concurrency = def.Concurrency
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	return c
}
