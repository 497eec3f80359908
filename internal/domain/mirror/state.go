package mirror

import "time"

// SystemState is the liveness record of the mirror host.
type SystemState struct {
	Online      bool
	LastPing    *time.Time
	Uptime      int64
	MemoryUsage float64
	CPUUsage    float64
	UpdatedAt   time.Time
}

// Heartbeat carries the gauges a display host reports.
type Heartbeat struct {
	Uptime      int64   `json:"uptime" validate:"min=0"`
	MemoryUsage float64 `json:"memoryUsage" validate:"min=0,max=100"`
	CPUUsage    float64 `json:"cpuUsage" validate:"min=0"`
}

// LastSeenAgo returns how long ago the last ping was, or -1 if never.
func (s *SystemState) LastSeenAgo(now time.Time) time.Duration {
	if s == nil || s.LastPing == nil {
		return -1
	}
	return now.Sub(*s.LastPing)
}
