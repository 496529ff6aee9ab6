package models

import (
	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/location"
)

// ReadingResponse is a reading with its display category.
type ReadingResponse struct {
	airquality.Reading

	Category airquality.Level `json:"level"`

	// LocationFallback is set when the caller's position could not be
	// determined and the default location was used.
	LocationFallback bool `json:"locationFallback,omitempty"`
}

// NewReadingResponse wraps r.
func NewReadingResponse(r airquality.Reading) ReadingResponse {
	return ReadingResponse{Reading: r, Category: r.Level()}
}

// SuggestionsResponse lists place suggestions for a query.
type SuggestionsResponse struct {
	Query       string                  `json:"query"`
	Suggestions []airquality.Suggestion `json:"suggestions"`
}

// PopularCitiesResponse lists the cities shown before the user types.
type PopularCitiesResponse struct {
	Cities []location.Entry `json:"cities"`
}

// StationsResponse lists monitoring stations.
type StationsResponse struct {
	City     string               `json:"city,omitempty"`
	Count    int                  `json:"count"`
	Stations []airquality.Station `json:"stations"`
}

// CitiesResponse lists the cities that have monitoring stations.
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// LevelsResponse lists the index categories.
type LevelsResponse struct {
	Levels []airquality.Level `json:"levels"`
}

// CacheInvalidation reports the outcome of an admin cache delete.
type CacheInvalidation struct {
	Location string    `json:"location"`
	Key      string    `json:"key"`
	Subject  string    `json:"subject"`
	At       Timestamp `json:"at"`
}
