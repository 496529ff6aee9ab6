package airquality_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airscope/airscope/internal/airquality"
)

func newSynthesizer(at time.Time, seed int64) *airquality.ForecastSynthesizer {
	return airquality.NewForecastSynthesizer(airquality.ForecastConfig{
		Clock: clockwork.NewFakeClockAt(at),
		Rand:  rand.New(rand.NewSource(seed)),
	})
}

func TestForecast_Project(t *testing.T) {
	// Monday 06:00 UTC in June.
	now := time.Date(2025, time.June, 2, 6, 0, 0, 0, time.UTC)
	f := newSynthesizer(now, 7)

	base := airquality.Reading{Index: 120, LocationName: "Delhi", Source: airquality.SourceLive}
	fc := f.Project(base, 0)

	require.Len(t, fc.Points, airquality.DefaultForecastHours)
	assert.Equal(t, airquality.ForecastModel, fc.Model)
	assert.NotEmpty(t, fc.Disclaimer)
	assert.Equal(t, 120, fc.BaseIndex)
	assert.Equal(t, "Delhi", fc.LocationName)

	prevConfidence := 100.0
	for i, p := range fc.Points {
		assert.Equal(t, i+1, p.HourOffset)
		assert.Equal(t, now.Add(time.Duration(i+1)*time.Hour), p.Time)
		assert.GreaterOrEqual(t, p.Index, 0)
		assert.LessOrEqual(t, p.Index, 500)
		assert.LessOrEqual(t, p.Confidence, prevConfidence)
		assert.GreaterOrEqual(t, p.Confidence, 60.0)
		assert.Contains(t, p.Factors, airquality.FactorMeteorology)
		assert.NotContains(t, p.Factors, airquality.FactorSeasonal)
		prevConfidence = p.Confidence
	}

	// 07:00 on a weekday is rush hour.
	assert.Contains(t, fc.Points[0].Factors, airquality.FactorTraffic)
	assert.InDelta(t, 94.2, fc.Points[0].Confidence, 1e-9)
	// 13:00 is not.
	assert.NotContains(t, fc.Points[6].Factors, airquality.FactorTraffic)
}

func TestForecast_HorizonBounds(t *testing.T) {
	f := newSynthesizer(time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), 1)
	base := airquality.Reading{Index: 80}

	assert.Len(t, f.Project(base, 500).Points, airquality.MaxForecastHours)
	assert.Len(t, f.Project(base, 3).Points, 3)

	long := f.Project(base, airquality.MaxForecastHours)
	assert.Equal(t, 60.0, long.Points[len(long.Points)-1].Confidence)
}

func TestForecast_WinterAndWeekend(t *testing.T) {
	// Saturday in December.
	f := newSynthesizer(time.Date(2025, time.December, 6, 12, 0, 0, 0, time.UTC), 3)
	fc := f.Project(airquality.Reading{Index: 200}, 4)

	for _, p := range fc.Points {
		assert.Contains(t, p.Factors, airquality.FactorSeasonal)
		assert.Contains(t, p.Factors, airquality.FactorWeekend)
		assert.NotContains(t, p.Factors, airquality.FactorTraffic)
	}
}

func TestForecast_DeterministicWithSeed(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	base := airquality.Reading{Index: 150}

	a := newSynthesizer(now, 42).Project(base, 24)
	b := newSynthesizer(now, 42).Project(base, 24)
	assert.Equal(t, a.Points, b.Points)
}

func TestForecast_ClampsAtBounds(t *testing.T) {
	f := newSynthesizer(time.Date(2025, time.January, 6, 7, 0, 0, 0, time.UTC), 9)

	for _, p := range f.Project(airquality.Reading{Index: 500}, 72).Points {
		assert.LessOrEqual(t, p.Index, 500)
	}
	for _, p := range f.Project(airquality.Reading{Index: 0}, 72).Points {
		assert.GreaterOrEqual(t, p.Index, 0)
	}
}
