package models

// HealthDetail is the platform's /health/detailed payload.
type HealthDetail struct {
	Status   string                   `json:"status"`
	Version  string                   `json:"version,omitempty"`
	Uptime   float64                  `json:"uptime_seconds,omitempty"`
	System   SystemResources          `json:"system"`
	Services map[string]ServiceStatus `json:"services"`
}

type SystemResources struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskPercent   float64 `json:"disk_percent"`
}

type ServiceStatus struct {
	Status  string  `json:"status"`
	Latency float64 `json:"latency_ms,omitempty"`
	Detail  string  `json:"detail,omitempty"`
}
