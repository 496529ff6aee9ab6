package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airscope/airscope/internal/api/middleware"
)

func hit(h http.Handler, remoteAddr, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/aqi", http.NoBody)
	req.RemoteAddr = remoteAddr
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitByIP_BlocksOverLimit(t *testing.T) {
	handler := middleware.RateLimitByIP(middleware.RateLimitConfig{RequestLimit: 3, WindowLength: time.Minute})(okHandler())

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.1:12345", "").Code, "request %d", i+1)
	}

	rec := hit(handler, "10.0.0.1:12345", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "too-many-requests")
	assert.Contains(t, rec.Body.String(), "/v1/aqi")
}

func TestRateLimitByIP_SeparateBudgetsPerIP(t *testing.T) {
	handler := middleware.RateLimitByIP(middleware.RateLimitConfig{RequestLimit: 1, WindowLength: time.Minute})(okHandler())

	assert.Equal(t, http.StatusOK, hit(handler, "172.16.0.1:1", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "172.16.0.1:1", "").Code)
	assert.Equal(t, http.StatusOK, hit(handler, "172.16.0.2:1", "").Code)
}

func TestRateLimitByIP_RetryAfterFollowsWindow(t *testing.T) {
	handler := middleware.RateLimitByIP(middleware.RateLimitConfig{RequestLimit: 1, WindowLength: 10 * time.Second})(okHandler())

	hit(handler, "198.51.100.7:1", "")
	rec := hit(handler, "198.51.100.7:1", "")
	assert.Equal(t, "10", rec.Header().Get("Retry-After"))
}

func TestRateLimitBySubject_SharedAcrossIPs(t *testing.T) {
	tokens := newTokens()
	token, _, err := tokens.Issue("ops@airscope", time.Hour)
	require.NoError(t, err)

	limited := middleware.RateLimitBySubject(middleware.RateLimitConfig{RequestLimit: 2, WindowLength: time.Minute})(okHandler())
	handler := middleware.AdminAuth(tokens)(limited)

	assert.Equal(t, http.StatusOK, hit(handler, "192.0.2.1:1", "Bearer "+token).Code)
	assert.Equal(t, http.StatusOK, hit(handler, "192.0.2.2:1", "Bearer "+token).Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "192.0.2.3:1", "Bearer "+token).Code)
}

func TestRateLimitBySubject_FallsBackToIP(t *testing.T) {
	handler := middleware.RateLimitBySubject(middleware.RateLimitConfig{RequestLimit: 1, WindowLength: time.Minute})(okHandler())

	assert.Equal(t, http.StatusOK, hit(handler, "192.0.2.10:1", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "192.0.2.10:1", "").Code)
	assert.Equal(t, http.StatusOK, hit(handler, "192.0.2.11:1", "").Code)
}

func TestRouteGroupBudgets(t *testing.T) {
	assert.Equal(t, 120, middleware.ReadRateLimit.RequestLimit)
	assert.Equal(t, 60, middleware.SearchRateLimit.RequestLimit)
	assert.Equal(t, 10, middleware.AdminRateLimit.RequestLimit)
	assert.Equal(t, time.Minute, middleware.AdminRateLimit.WindowLength)
}
