// Package handler holds the HTTP handlers of the AirScope API.
package handler

import (
	"errors"
	"net/http"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/api/models"
	"github.com/airscope/airscope/internal/api/response"
	"github.com/airscope/airscope/internal/location"
)

// AQIHandler serves readings and what is derived from them.
type AQIHandler struct {
	gateway    *airquality.Gateway
	forecaster *airquality.ForecastSynthesizer
	locator    *location.Locator
}

// NewAQIHandler creates an AQIHandler.
func NewAQIHandler(gateway *airquality.Gateway, forecaster *airquality.ForecastSynthesizer, locator *location.Locator) *AQIHandler {
	return &AQIHandler{gateway: gateway, forecaster: forecaster, locator: locator}
}

// Reading handles GET /v1/aqi?location=.
func (h *AQIHandler) Reading(w http.ResponseWriter, r *http.Request) {
	var q locationQuery
	if err := q.bind(r); err != nil {
		response.Invalid(w, r, err)
		return
	}

	reading := h.gateway.FetchReading(r.Context(), q.Location)
	response.JSON(w, r, http.StatusOK, models.NewReadingResponse(reading))
}

// ReadingByCoordinates handles GET /v1/aqi/geo?lat=&lng=. Without
// coordinates the locator's default position is used.
func (h *AQIHandler) ReadingByCoordinates(w http.ResponseWriter, r *http.Request) {
	var q coordinatesQuery
	if err := q.bind(r, true); err != nil {
		response.Invalid(w, r, err)
		return
	}

	coords := q.coordinates()
	fallback := false
	if q.Missing {
		// The server cannot see the caller's device, so there is no
		// position source and the locator answers with its default.
		fix := h.locator.Locate(r.Context(), nil)
		coords, fallback = fix.Coordinates, fix.Fallback
	}

	reading, err := h.gateway.FetchReadingByCoordinates(r.Context(), coords)
	if err != nil {
		response.Invalid(w, r, err)
		return
	}

	resp := models.NewReadingResponse(reading)
	resp.LocationFallback = fallback
	response.JSON(w, r, http.StatusOK, resp)
}

// Forecast handles GET /v1/aqi/forecast?location=&hours=.
func (h *AQIHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	var q forecastQuery
	if err := q.bind(r); err != nil {
		response.Invalid(w, r, err)
		return
	}

	base := h.gateway.FetchReading(r.Context(), q.Location)
	response.JSON(w, r, http.StatusOK, h.forecaster.Project(base, q.Hours))
}

// Threshold handles GET /v1/aqi/threshold?location=&threshold=.
func (h *AQIHandler) Threshold(w http.ResponseWriter, r *http.Request) {
	var q thresholdQuery
	if err := q.bind(r); err != nil {
		response.Invalid(w, r, err)
		return
	}

	reading := h.gateway.FetchReading(r.Context(), q.Location)
	result, err := airquality.EvaluateThreshold(reading, q.Threshold)
	if err != nil {
		if errors.Is(err, airquality.ErrInvalidThreshold) {
			response.Invalid(w, r, err)
			return
		}
		response.InternalError(w, r, "threshold evaluation failed")
		return
	}
	response.JSON(w, r, http.StatusOK, result)
}

// Levels handles GET /v1/aqi/levels.
func (h *AQIHandler) Levels(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.LevelsResponse{Levels: airquality.Levels()})
}
