package models

// Health is the liveness and readiness body.
type Health struct {
	Status  HealthStatus      `json:"status"`
	Time    Timestamp         `json:"time"`
	Version string            `json:"version,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// SystemStatus is the operator view: subsystems, upstream providers and the
// reading cache counters.
type SystemStatus struct {
	Status     HealthStatus      `json:"status"`
	Time       Timestamp         `json:"time"`
	Version    string            `json:"version"`
	BuildTime  string            `json:"buildTime,omitempty"`
	Subsystems []SubsystemStatus `json:"subsystems"`
	Providers  []ProviderStatus  `json:"providers"`
	Caches     []CacheStatus     `json:"caches"`
}

// SubsystemStatus is the status of one internal dependency.
type SubsystemStatus struct {
	Name   string       `json:"name"`
	Status HealthStatus `json:"status"`
	Detail string       `json:"detail,omitempty"`
}

// ProviderStatus is the recent track record of one upstream.
type ProviderStatus struct {
	Provider            string       `json:"provider"`
	Status              HealthStatus `json:"status"`
	CircuitState        string       `json:"circuitState"`
	ConsecutiveFailures int          `json:"consecutiveFailures"`
	LastSuccessAt       *Timestamp   `json:"lastSuccessAt,omitempty"`
	LastFailureAt       *Timestamp   `json:"lastFailureAt,omitempty"`
	Message             string       `json:"message,omitempty"`
}

// CacheStatus mirrors the counters of one cache namespace.
type CacheStatus struct {
	Namespace string `json:"namespace"`
	Fresh     int64  `json:"fresh"`
	Stale     int64  `json:"stale"`
	Misses    int64  `json:"misses"`
	Writes    int64  `json:"writes"`
	Errors    int64  `json:"errors"`
}
