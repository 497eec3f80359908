package dto

import (
	"time"

	"github.com/lumenhq/lumen/internal/domain/mirror"
)

// BuildInfoResponse is the build identity polled by the kiosk agent.
type BuildInfoResponse struct {
	BuildTime string `json:"buildTime"`
	Timestamp int64  `json:"timestamp"`
}

type SystemDTO struct {
	Online      bool       `json:"online"`
	LastPing    *time.Time `json:"lastPing"`
	Uptime      int64      `json:"uptime"`
	MemoryUsage float64    `json:"memoryUsage"`
	CPUUsage    float64    `json:"cpuUsage"`
}

type WidgetCountsDTO struct {
	Total   int64 `json:"total"`
	Enabled int64 `json:"enabled"`
}

type ActivityDTO struct {
	ID        uint           `json:"id"`
	Action    string         `json:"action"`
	Category  string         `json:"category"`
	UserID    string         `json:"userId"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"createdAt"`
}

// StatusResponse is the admin dashboard overview.
type StatusResponse struct {
	System         SystemDTO          `json:"system"`
	ConfigVersion  mirror.VersionView `json:"configVersion"`
	Widgets        WidgetCountsDTO    `json:"widgets"`
	RecentActivity []ActivityDTO      `json:"recentActivity"`
}

// HeartbeatResponse reports whether the heartbeat was stored.
type HeartbeatResponse struct {
	Success bool `json:"success"`
}

// ToSystemDTO converts the liveness record. A nil state is reported offline.
func ToSystemDTO(s *mirror.SystemState) SystemDTO {
	if s == nil {
		return SystemDTO{}
	}
	return SystemDTO{
		Online:      s.Online,
		LastPing:    s.LastPing,
		Uptime:      s.Uptime,
		MemoryUsage: s.MemoryUsage,
		CPUUsage:    s.CPUUsage,
	}
}

func ToActivityDTOs(entries []*mirror.ActivityEntry) []ActivityDTO {
	out := make([]ActivityDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, ActivityDTO{
			ID:        e.ID,
			Action:    e.Action,
			Category:  e.Category,
			UserID:    e.UserID,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
