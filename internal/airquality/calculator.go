package airquality

import (
	"fmt"
	"math"
)

// Index bounds.
const (
	MinIndex = 0
	MaxIndex = 500
)

// Breakpoint maps a concentration range onto an index range.
type Breakpoint struct {
	ConcLow  float64
	ConcHigh float64
	AQILow   float64
	AQIHigh  float64
}

// Indian national AQI breakpoints. PM, NO2, O3, SO2, NH3 and Pb in µg/m³,
// CO in mg/m³. Bands are contiguous so each band edge maps to exactly one
// index value.
var nationalBreakpoints = map[Pollutant][]Breakpoint{
	PollutantPM25: {
		{0, 30, 0, 50},
		{30, 60, 50, 100},
		{60, 90, 100, 200},
		{90, 120, 200, 300},
		{120, 250, 300, 400},
		{250, 500, 400, 500},
	},
	PollutantPM10: {
		{0, 50, 0, 50},
		{50, 100, 50, 100},
		{100, 250, 100, 200},
		{250, 350, 200, 300},
		{350, 430, 300, 400},
		{430, 500, 400, 500},
	},
	PollutantNO2: {
		{0, 40, 0, 50},
		{40, 80, 50, 100},
		{80, 180, 100, 200},
		{180, 280, 200, 300},
		{280, 400, 300, 400},
		{400, 500, 400, 500},
	},
	PollutantO3: {
		{0, 50, 0, 50},
		{50, 100, 50, 100},
		{100, 168, 100, 200},
		{168, 208, 200, 300},
		{208, 748, 300, 400},
		{748, 1000, 400, 500},
	},
	PollutantSO2: {
		{0, 40, 0, 50},
		{40, 80, 50, 100},
		{80, 380, 100, 200},
		{380, 800, 200, 300},
		{800, 1600, 300, 400},
		{1600, 2000, 400, 500},
	},
	PollutantCO: {
		{0, 1, 0, 50},
		{1, 2, 50, 100},
		{2, 10, 100, 200},
		{10, 17, 200, 300},
		{17, 34, 300, 400},
		{34, 50, 400, 500},
	},
	PollutantNH3: {
		{0, 200, 0, 50},
		{200, 400, 50, 100},
		{400, 800, 100, 200},
		{800, 1200, 200, 300},
		{1200, 1800, 300, 400},
		{1800, 2400, 400, 500},
	},
	PollutantPb: {
		{0, 0.5, 0, 50},
		{0.5, 1, 50, 100},
		{1, 2, 100, 200},
		{2, 3, 200, 300},
		{3, 3.5, 300, 400},
		{3.5, 4, 400, 500},
	},
}

// Calculator converts pollutant concentrations into index values.
type Calculator struct {
	tables map[Pollutant][]Breakpoint
}

// NewCalculator returns a calculator over the national breakpoint tables.
func NewCalculator() *Calculator {
	return &Calculator{tables: nationalBreakpoints}
}

// Breakpoints returns the bands for p.
func (c *Calculator) Breakpoints(p Pollutant) ([]Breakpoint, bool) {
	bands, ok := c.tables[p]
	if !ok {
		return nil, false
	}
	out := make([]Breakpoint, len(bands))
	copy(out, bands)
	return out, true
}

// IndexFor returns the sub-index of one pollutant concentration.
func (c *Calculator) IndexFor(p Pollutant, concentration float64) (int, error) {
	bands, ok := c.tables[p]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedPollutant, p)
	}
	if math.IsNaN(concentration) {
		return 0, fmt.Errorf("index for %s: concentration is NaN", p)
	}
	if concentration <= 0 {
		return MinIndex, nil
	}

	for _, b := range bands {
		if concentration <= b.ConcHigh {
			aqi := b.AQILow + (b.AQIHigh-b.AQILow)/(b.ConcHigh-b.ConcLow)*(concentration-b.ConcLow)
			return clampIndex(int(math.Round(aqi))), nil
		}
	}
	return MaxIndex, nil
}

// Overall is the combined index of a set of concentrations.
type Overall struct {
	Index      int               `json:"index"`
	Dominant   Pollutant         `json:"dominantPollutant"`
	SubIndices map[Pollutant]int `json:"subIndices"`
}

// OverallIndex returns the highest sub-index across concentrations and the
// pollutant that produced it. Unsupported pollutants are ignored. ok is false
// when no supported pollutant was supplied.
func (c *Calculator) OverallIndex(concentrations map[Pollutant]float64) (Overall, bool) {
	result := Overall{SubIndices: make(map[Pollutant]int, len(concentrations))}
	found := false

	for _, p := range Pollutants {
		v, present := concentrations[p]
		if !present {
			continue
		}
		idx, err := c.IndexFor(p, v)
		if err != nil {
			continue
		}
		result.SubIndices[p] = idx
		if !found || idx > result.Index {
			result.Index = idx
			result.Dominant = p
			found = true
		}
	}
	return result, found
}

func clampIndex(v int) int {
	if v < MinIndex {
		return MinIndex
	}
	if v > MaxIndex {
		return MaxIndex
	}
	return v
}
