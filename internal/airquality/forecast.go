package airquality

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Forecast horizon bounds in hours.
const (
	DefaultForecastHours = 24
	MaxForecastHours     = 72
)

// ForecastModel names the projection method reported to callers.
const ForecastModel = "synthetic-variation"

// ForecastDisclaimer is attached to every forecast.
const ForecastDisclaimer = "Projection derived from the current reading using daily, weekly and seasonal " +
	"variation patterns with random noise. It is not a trained prediction model."

// Forecast factors.
const (
	FactorTraffic     = "traffic"
	FactorMeteorology = "meteorology"
	FactorSeasonal    = "seasonal"
	FactorWeekend     = "weekend"
)

// ForecastPoint is the projected index for one hour.
type ForecastPoint struct {
	Time       time.Time `json:"time"`
	HourOffset int       `json:"hourOffset"`
	Index      int       `json:"index"`
	Level      string    `json:"level"`
	Confidence float64   `json:"confidence"`
	Factors    []string  `json:"factors"`
}

// Forecast is an hourly projection from a base reading.
type Forecast struct {
	LocationName string          `json:"locationName"`
	BaseIndex    int             `json:"baseIndex"`
	BaseSource   Source          `json:"baseSource"`
	GeneratedAt  time.Time       `json:"generatedAt"`
	Model        string          `json:"model"`
	Disclaimer   string          `json:"disclaimer"`
	Points       []ForecastPoint `json:"points"`
}

// ForecastConfig configures a ForecastSynthesizer.
type ForecastConfig struct {
	Clock clockwork.Clock
	// Rand supplies the noise term. Defaults to a time-seeded source.
	Rand *rand.Rand
	// Location is the time zone hours are evaluated in. Defaults to UTC.
	Location *time.Location
}

// ForecastSynthesizer projects a reading forward in time.
type ForecastSynthesizer struct {
	clock clockwork.Clock
	loc   *time.Location

	mu  sync.Mutex
	rng *rand.Rand
}

// NewForecastSynthesizer creates a ForecastSynthesizer.
func NewForecastSynthesizer(cfg ForecastConfig) *ForecastSynthesizer {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &ForecastSynthesizer{clock: cfg.Clock, rng: cfg.Rand, loc: cfg.Location}
}

// Project returns hours hourly points after base. hours is clamped to
// [1, MaxForecastHours]; zero or less means DefaultForecastHours.
func (f *ForecastSynthesizer) Project(base Reading, hours int) Forecast {
	if hours <= 0 {
		hours = DefaultForecastHours
	}
	if hours > MaxForecastHours {
		hours = MaxForecastHours
	}

	now := f.clock.Now().In(f.loc)
	points := make([]ForecastPoint, 0, hours)

	f.mu.Lock()
	defer f.mu.Unlock()

	for i := 1; i <= hours; i++ {
		at := now.Add(time.Duration(i) * time.Hour)
		value, factors := f.variation(float64(base.Index), i, at)
		idx := clampIndex(int(math.Round(value)))

		points = append(points, ForecastPoint{
			Time:       at,
			HourOffset: i,
			Index:      idx,
			Level:      LevelFor(idx).Name,
			Confidence: math.Max(60, 95-0.8*float64(i)),
			Factors:    factors,
		})
	}

	return Forecast{
		LocationName: base.LocationName,
		BaseIndex:    base.Index,
		BaseSource:   base.Source,
		GeneratedAt:  now,
		Model:        ForecastModel,
		Disclaimer:   ForecastDisclaimer,
		Points:       points,
	}
}

func (f *ForecastSynthesizer) variation(base float64, offset int, at time.Time) (float64, []string) {
	hour := at.Hour()
	weekend := at.Weekday() == time.Saturday || at.Weekday() == time.Sunday

	value := base
	var factors []string

	if !weekend && ((hour >= 7 && hour <= 10) || (hour >= 17 && hour <= 20)) {
		value += 25
		factors = append(factors, FactorTraffic)
	}
	if hour >= 22 || hour <= 6 {
		value -= 20
	}
	if weekend {
		value -= 10
		factors = append(factors, FactorWeekend)
	}

	value += math.Sin(float64(offset)/8) * 15
	value += math.Cos(float64(offset)/12) * 10
	factors = append(factors, FactorMeteorology)

	if isWinter(at.Month()) {
		value += 20
		factors = append(factors, FactorSeasonal)
	}

	value += (f.rng.Float64() - 0.5) * 30
	return value, factors
}

func isWinter(m time.Month) bool {
	return m == time.November || m == time.December || m == time.January || m == time.February
}
