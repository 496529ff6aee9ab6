package handler

import (
	"errors"
	"net/http"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/api/models"
	"github.com/airscope/airscope/internal/api/response"
)

// StationsHandler serves government monitoring stations.
type StationsHandler struct {
	stations *airquality.StationService
}

// NewStationsHandler creates a StationsHandler.
func NewStationsHandler(stations *airquality.StationService) *StationsHandler {
	return &StationsHandler{stations: stations}
}

// List handles GET /v1/stations?city=.
func (h *StationsHandler) List(w http.ResponseWriter, r *http.Request) {
	var q cityQuery
	if err := q.bind(r); err != nil {
		response.Invalid(w, r, err)
		return
	}

	stations := nonNil(h.stations.Stations(r.Context(), q.City))
	response.JSON(w, r, http.StatusOK, models.StationsResponse{
		City:     q.City,
		Count:    len(stations),
		Stations: stations,
	})
}

// Cities handles GET /v1/stations/cities.
func (h *StationsHandler) Cities(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.CitiesResponse{Cities: nonNil(h.stations.AvailableCities(r.Context()))})
}

// Estimate handles GET /v1/stations/estimate?lat=&lng=.
func (h *StationsHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var q coordinatesQuery
	if err := q.bind(r, false); err != nil {
		response.Invalid(w, r, err)
		return
	}

	estimate, err := h.stations.Estimate(r.Context(), q.coordinates())
	switch {
	case err == nil:
		response.JSON(w, r, http.StatusOK, estimate)
	case errors.Is(err, airquality.ErrInvalidCoordinates):
		response.Invalid(w, r, err)
	case errors.Is(err, airquality.ErrNoStationsInRange), errors.Is(err, airquality.ErrInsufficientData):
		response.NotFound(w, r, err.Error())
	default:
		response.InternalError(w, r, "estimate failed")
	}
}
