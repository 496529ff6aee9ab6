package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/airscope/airscope/internal/api/models"
	"github.com/airscope/airscope/internal/api/response"
	"github.com/airscope/airscope/internal/cache"
	"github.com/airscope/airscope/internal/provider/resilience"
)

const checkTimeout = 3 * time.Second

// Check is a named dependency probe.
type Check struct {
	Name string
	// Critical checks fail readiness; the others only degrade it.
	Critical bool
	Probe    func(ctx context.Context) error
}

// CacheStatter exposes the counters of one cache namespace.
type CacheStatter interface {
	CacheStats() cache.Stats
}

// OpsConfig holds what the operational endpoints report on.
type OpsConfig struct {
	Version   string
	BuildTime string
	Registry  *resilience.Registry
	Checks    []Check
	Caches    []CacheStatter
}

// OpsHandler serves liveness, readiness and status.
type OpsHandler struct {
	cfg OpsConfig
}

// NewOpsHandler creates an OpsHandler.
func NewOpsHandler(cfg OpsConfig) *OpsHandler {
	if cfg.Registry == nil {
		cfg.Registry = resilience.NewRegistry()
	}
	return &OpsHandler{cfg: cfg}
}

// HealthCheck handles GET /v1/ops/health. The process is alive if it can
// answer.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{
		Status:  models.HealthStatusOK,
		Time:    models.Timestamp(time.Now()),
		Version: h.cfg.Version,
	})
}

// ReadinessCheck handles GET /v1/ops/ready. A failed critical check
// answers 503; other failures degrade the status but keep serving, since
// readings fall back to cached and synthetic data.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	subsystems := h.runChecks(r.Context())

	details := make(map[string]string, len(subsystems))
	for _, s := range subsystems {
		details[s.Name] = string(s.Status)
	}
	status := worst(subsystems)

	code := http.StatusOK
	if status == models.HealthStatusFail {
		code = http.StatusServiceUnavailable
	}
	response.JSON(w, r, code, models.Health{
		Status:  status,
		Time:    models.Timestamp(time.Now()),
		Version: h.cfg.Version,
		Details: details,
	})
}

// SystemStatus handles GET /v1/ops/status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	subsystems := h.runChecks(r.Context())
	providers := h.providers()

	status := worst(subsystems)
	for _, p := range providers {
		// Upstream trouble degrades the service but never fails it.
		if p.Status != models.HealthStatusOK && status == models.HealthStatusOK {
			status = models.HealthStatusDegraded
		}
	}

	caches := make([]models.CacheStatus, 0, len(h.cfg.Caches))
	for _, c := range h.cfg.Caches {
		s := c.CacheStats()
		caches = append(caches, models.CacheStatus{
			Namespace: s.Namespace,
			Fresh:     s.Fresh,
			Stale:     s.Stale,
			Misses:    s.Misses,
			Writes:    s.Writes,
			Errors:    s.Errors,
		})
	}

	response.JSON(w, r, http.StatusOK, models.SystemStatus{
		Status:     status,
		Time:       models.Timestamp(time.Now()),
		Version:    h.cfg.Version,
		BuildTime:  h.cfg.BuildTime,
		Subsystems: subsystems,
		Providers:  providers,
		Caches:     caches,
	})
}

func (h *OpsHandler) runChecks(ctx context.Context) []models.SubsystemStatus {
	out := make([]models.SubsystemStatus, 0, len(h.cfg.Checks))
	for _, c := range h.cfg.Checks {
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := c.Probe(cctx)
		cancel()

		s := models.SubsystemStatus{Name: c.Name, Status: models.HealthStatusOK}
		if err != nil {
			s.Status = models.HealthStatusDegraded
			if c.Critical {
				s.Status = models.HealthStatusFail
			}
			s.Detail = err.Error()
		}
		out = append(out, s)
	}
	return out
}

func (h *OpsHandler) providers() []models.ProviderStatus {
	health := h.cfg.Registry.GetAllHealth()
	out := make([]models.ProviderStatus, 0, len(health))
	for _, p := range health {
		ps := models.ProviderStatus{
			Provider:            p.Name,
			Status:              providerStatus(p.Status()),
			CircuitState:        p.CircuitState.String(),
			ConsecutiveFailures: int(p.Counts.ConsecutiveFailures),
			Message:             p.LastError,
		}
		if p.LastSuccessAt != nil {
			ps.LastSuccessAt = models.NewTimestamp(*p.LastSuccessAt)
		}
		if p.LastFailureAt != nil {
			ps.LastFailureAt = models.NewTimestamp(*p.LastFailureAt)
		}
		out = append(out, ps)
	}
	return out
}

func providerStatus(s string) models.HealthStatus {
	switch s {
	case resilience.StatusUnhealthy:
		return models.HealthStatusFail
	case resilience.StatusDegraded:
		return models.HealthStatusDegraded
	default:
		return models.HealthStatusOK
	}
}

func worst(subsystems []models.SubsystemStatus) models.HealthStatus {
	status := models.HealthStatusOK
	for _, s := range subsystems {
		switch s.Status {
		case models.HealthStatusFail:
			return models.HealthStatusFail
		case models.HealthStatusDegraded:
			status = models.HealthStatusDegraded
		}
	}
	return status
}
