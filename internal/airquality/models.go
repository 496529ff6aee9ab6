// Package airquality turns place names and coordinates into air-quality
// readings. It owns the index calculator, the cache-first retrieval gateway,
// location search, government station records and the synthetic forecast.
package airquality

import (
	"strings"
	"time"

	"github.com/airscope/airscope/internal/location"
)

// Pollutant identifies a measured pollutant.
type Pollutant string

const (
	PollutantPM25 Pollutant = "pm25"
	PollutantPM10 Pollutant = "pm10"
	PollutantNO2  Pollutant = "no2"
	PollutantO3   Pollutant = "o3"
	PollutantSO2  Pollutant = "so2"
	PollutantCO   Pollutant = "co"
	PollutantNH3  Pollutant = "nh3"
	PollutantPb   Pollutant = "pb"
)

// Pollutants lists the supported pollutants in reporting order. Ties for the
// dominant pollutant are broken by this order.
var Pollutants = []Pollutant{
	PollutantPM25,
	PollutantPM10,
	PollutantNO2,
	PollutantO3,
	PollutantSO2,
	PollutantCO,
	PollutantNH3,
	PollutantPb,
}

// ParsePollutant maps an upstream key to a supported pollutant.
func ParsePollutant(key string) (Pollutant, bool) {
	p := Pollutant(strings.ToLower(strings.TrimSpace(key)))
	for _, known := range Pollutants {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// Source tags how reliable a reading is.
type Source string

const (
	SourceLive       Source = "live"
	SourceStaleCache Source = "stale-cache"
	SourceSynthetic  Source = "synthetic"
)

// Reading is one air-quality observation for a place.
type Reading struct {
	Index             int                   `json:"index"`
	DominantPollutant Pollutant             `json:"dominantPollutant"`
	Concentrations    map[Pollutant]float64 `json:"pollutantConcentrations"`
	MeasuredAt        time.Time             `json:"measuredAt"`
	Coordinates       location.Coordinates  `json:"coordinates"`
	LocationName      string                `json:"locationName"`
	Source            Source                `json:"source"`
	Attribution       string                `json:"attribution,omitempty"`
	// Weather holds non-pollutant observations such as t, h, p and w.
	Weather map[string]float64 `json:"weather,omitempty"`
}

// Level returns the category band for the reading's index.
func (r Reading) Level() Level {
	return LevelFor(r.Index)
}

// Suggestion is a location search hit.
type Suggestion struct {
	Name        string               `json:"name"`
	Coordinates location.Coordinates `json:"coordinates"`
	Source      string               `json:"source"`
}

// Suggestion sources.
const (
	SuggestionGazetteer = "gazetteer"
	SuggestionPopular   = "popular"
	SuggestionNetwork   = "network"
)

// PollutantStats are the min, max and average concentrations a government
// station reports for one pollutant.
type PollutantStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Avg  float64 `json:"avg"`
	Unit string  `json:"unit,omitempty"`
}

// Station is a government monitoring station with its latest values.
type Station struct {
	ID                string                       `json:"id"`
	Name              string                       `json:"name"`
	City              string                       `json:"city"`
	State             string                       `json:"state"`
	Agency            string                       `json:"agency,omitempty"`
	Coordinates       *location.Coordinates        `json:"coordinates,omitempty"`
	Pollutants        map[Pollutant]PollutantStats `json:"pollutants"`
	Index             int                          `json:"index"`
	DominantPollutant Pollutant                    `json:"dominantPollutant"`
	Level             string                       `json:"level"`
	LastUpdate        time.Time                    `json:"lastUpdate"`
}

// Averages returns the station's average concentration per pollutant.
func (s Station) Averages() map[Pollutant]float64 {
	out := make(map[Pollutant]float64, len(s.Pollutants))
	for p, stats := range s.Pollutants {
		out[p] = stats.Avg
	}
	return out
}
