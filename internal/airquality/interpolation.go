package airquality

import (
	"math"
	"sort"

	"github.com/airscope/airscope/internal/location"
)

// Confidence grades an estimate by how close and how many stations back it.
type Confidence string

const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

// InterpolationConfig holds configuration for the interpolation algorithm.
type InterpolationConfig struct {
	// MaxDistance is the search radius in meters (default: 50 km).
	MaxDistance float64

	// MinStations and MaxStations bound how many stations in range take
	// part (defaults: 1 and 5, nearest first).
	MinStations int
	MaxStations int

	// Power is the inverse distance weighting exponent (default: 2).
	Power float64

	// A value is HIGH confidence when its nearest station is within
	// HighConfidenceMaxDistance and at least two stations contribute, and
	// MEDIUM within MediumConfidenceMaxDistance (defaults: 5 km, 15 km).
	HighConfidenceMaxDistance   float64
	MediumConfidenceMaxDistance float64
}

// DefaultInterpolationConfig returns the default configuration.
func DefaultInterpolationConfig() InterpolationConfig {
	return InterpolationConfig{
		MaxDistance:                 50000,
		MinStations:                 1,
		MaxStations:                 5,
		Power:                       2.0,
		HighConfidenceMaxDistance:   5000,
		MediumConfidenceMaxDistance: 15000,
	}
}

// InterpolatedValue is one pollutant estimated at a point.
type InterpolatedValue struct {
	Pollutant              Pollutant             `json:"pollutant"`
	Value                  float64               `json:"value"`
	Confidence             Confidence            `json:"confidence"`
	StationsUsed           int                   `json:"stationsUsed"`
	NearestStationDistance float64               `json:"nearestStationDistance"`
	ContributingStations   []StationContribution `json:"contributingStations"`
}

// StationContribution describes a station's contribution to an interpolated value.
type StationContribution struct {
	StationID string  `json:"stationId"`
	Distance  float64 `json:"distance"` // meters
	Value     float64 `json:"value"`
	Weight    float64 `json:"weight"` // normalized, 0-1
}

// InterpolatedPoint holds every pollutant estimated at a point.
type InterpolatedPoint struct {
	Coordinates location.Coordinates             `json:"coordinates"`
	Values      map[Pollutant]*InterpolatedValue `json:"values"`
}

type stationDistance struct {
	station  *Station
	distance float64
}

// Interpolator estimates pollutant levels between government stations.
type Interpolator struct {
	config InterpolationConfig
}

// NewInterpolator creates a new Interpolator with the given configuration.
func NewInterpolator(config InterpolationConfig) *Interpolator {
	def := DefaultInterpolationConfig()
	if config.MaxDistance <= 0 {
		config.MaxDistance = def.MaxDistance
	}
	if config.MinStations <= 0 {
		config.MinStations = def.MinStations
	}
	if config.MaxStations <= 0 {
		config.MaxStations = def.MaxStations
	}
	if config.Power <= 0 {
		config.Power = def.Power
	}
	if config.HighConfidenceMaxDistance <= 0 {
		config.HighConfidenceMaxDistance = def.HighConfidenceMaxDistance
	}
	if config.MediumConfidenceMaxDistance <= 0 {
		config.MediumConfidenceMaxDistance = def.MediumConfidenceMaxDistance
	}
	return &Interpolator{config: config}
}

// Interpolate estimates each pollutant at c from the nearest stations that
// carry coordinates.
func (i *Interpolator) Interpolate(c location.Coordinates, stations []Station) (*InterpolatedPoint, error) {
	var nearby []stationDistance
	for idx := range stations {
		s := &stations[idx]
		if s.Coordinates == nil {
			continue
		}
		dist := location.Distance(c, *s.Coordinates)
		if dist <= i.config.MaxDistance {
			nearby = append(nearby, stationDistance{station: s, distance: dist})
		}
	}

	if len(nearby) == 0 || len(nearby) < i.config.MinStations {
		return nil, ErrNoStationsInRange
	}

	sort.SliceStable(nearby, func(a, b int) bool {
		return nearby[a].distance < nearby[b].distance
	})
	if len(nearby) > i.config.MaxStations {
		nearby = nearby[:i.config.MaxStations]
	}

	result := &InterpolatedPoint{
		Coordinates: c,
		Values:      make(map[Pollutant]*InterpolatedValue),
	}
	for _, p := range Pollutants {
		if value, ok := i.interpolatePollutant(p, nearby); ok {
			result.Values[p] = value
		}
	}

	if len(result.Values) == 0 {
		return nil, ErrInsufficientData
	}
	return result, nil
}

func (i *Interpolator) interpolatePollutant(p Pollutant, nearby []stationDistance) (*InterpolatedValue, bool) {
	contributions := make([]StationContribution, 0, len(nearby))
	var totalWeight float64

	for _, sd := range nearby {
		stats, ok := sd.station.Pollutants[p]
		if !ok {
			continue
		}

		var weight float64
		if sd.distance < 1 {
			// On top of the station: its value wins outright.
			weight = 1e10
		} else {
			weight = 1.0 / math.Pow(sd.distance, i.config.Power)
		}

		contributions = append(contributions, StationContribution{
			StationID: sd.station.ID,
			Distance:  sd.distance,
			Value:     stats.Avg,
			Weight:    weight,
		})
		totalWeight += weight
	}

	if len(contributions) == 0 {
		return nil, false
	}

	var value float64
	for idx := range contributions {
		contributions[idx].Weight /= totalWeight
		value += contributions[idx].Value * contributions[idx].Weight
	}

	nearest := contributions[0].Distance
	return &InterpolatedValue{
		Pollutant:              p,
		Value:                  value,
		Confidence:             i.confidence(nearest, len(contributions)),
		StationsUsed:           len(contributions),
		NearestStationDistance: nearest,
		ContributingStations:   contributions,
	}, true
}

func (i *Interpolator) confidence(nearestDistance float64, stationCount int) Confidence {
	if nearestDistance <= i.config.HighConfidenceMaxDistance && stationCount >= 2 {
		return ConfidenceHigh
	}
	if nearestDistance <= i.config.MediumConfidenceMaxDistance {
		return ConfidenceMedium
	}
	return ConfidenceLow
}
