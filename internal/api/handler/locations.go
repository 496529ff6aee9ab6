package handler

import (
	"net/http"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/api/models"
	"github.com/airscope/airscope/internal/api/response"
	"github.com/airscope/airscope/internal/location"
)

// LocationsHandler serves place search.
type LocationsHandler struct {
	search   *airquality.SearchService
	resolver *location.Resolver
}

// NewLocationsHandler creates a LocationsHandler.
func NewLocationsHandler(search *airquality.SearchService, resolver *location.Resolver) *LocationsHandler {
	return &LocationsHandler{search: search, resolver: resolver}
}

// Search handles GET /v1/locations/search?q=.
func (h *LocationsHandler) Search(w http.ResponseWriter, r *http.Request) {
	var q searchQuery
	if err := q.bind(r); err != nil {
		response.Invalid(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.SuggestionsResponse{
		Query:       q.Q,
		Suggestions: nonNil(h.search.Search(r.Context(), q.Q)),
	})
}

// Suggestions handles GET /v1/locations/suggestions?q=. It never reaches
// the network.
func (h *LocationsHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	var q suggestionsQuery
	if err := q.bind(r); err != nil {
		response.Invalid(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.SuggestionsResponse{
		Query:       q.Q,
		Suggestions: nonNil(h.search.InstantSuggestions(q.Q)),
	})
}

// Popular handles GET /v1/locations/popular.
func (h *LocationsHandler) Popular(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.PopularCitiesResponse{Cities: h.resolver.PopularCities()})
}

// nonNil keeps empty lists serialized as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
