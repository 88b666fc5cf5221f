package models

import (
	"time"

	"github.com/jroosing/fleetdns/internal/store"
)

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string     `json:"uptime"`
	UptimeSeconds int64      `json:"uptime_seconds"`
	StartTime     time.Time  `json:"start_time"`
	GoRoutines    int        `json:"goroutines"`
	MemoryAllocMB float64    `json:"memory_alloc_mb"`
	NumCPU        int        `json:"num_cpu"`
	Host          *HostStats `json:"host,omitempty"`
	Provider      string     `json:"provider,omitempty"`
	Declaration   int64      `json:"declaration_version"`
}

// HostStats contains machine-level statistics from gopsutil. The block
// is omitted when the platform does not expose them.
type HostStats struct {
	MemoryUsedPercent float64 `json:"memory_used_percent"`
	MemoryTotalMB     float64 `json:"memory_total_mb"`
	UptimeSeconds     uint64  `json:"uptime_seconds"`
}

// RunListResponse contains recent apply runs.
type RunListResponse struct {
	Runs  []store.Run `json:"runs"`
	Count int         `json:"count"`
}
