package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/api/middleware"
	"github.com/airscope/airscope/internal/api/models"
	"github.com/airscope/airscope/internal/api/response"
	"github.com/airscope/airscope/internal/cache"
)

// AdminHandler serves the token-guarded cache administration routes.
type AdminHandler struct {
	gateway *airquality.Gateway
	logger  zerolog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(gateway *airquality.Gateway, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{gateway: gateway, logger: logger}
}

// InvalidateReading handles DELETE /v1/admin/cache/readings?location=.
func (h *AdminHandler) InvalidateReading(w http.ResponseWriter, r *http.Request) {
	var q locationQuery
	if err := q.bind(r); err != nil {
		response.Invalid(w, r, err)
		return
	}

	subject := middleware.GetSubject(r.Context())
	if err := h.gateway.Invalidate(r.Context(), q.Location); err != nil {
		h.logger.Error().Err(err).Str("location", q.Location).Str("subject", subject).Msg("cache invalidation failed")
		response.InternalError(w, r, "cache invalidation failed")
		return
	}

	h.logger.Info().Str("location", q.Location).Str("subject", subject).Msg("reading cache entry invalidated")
	response.JSON(w, r, http.StatusOK, models.CacheInvalidation{
		Location: q.Location,
		Key:      cache.NameKey(q.Location),
		Subject:  subject,
		At:       models.Timestamp(time.Now()),
	})
}
