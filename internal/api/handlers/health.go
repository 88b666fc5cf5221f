package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/jroosing/fleetdns/internal/api/models"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status; checks store connectivity when configured
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "store unavailable: " + err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including memory, goroutines and host metrics
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
	}

	if p := h.Provider(); p != nil {
		resp.Provider = p.Name()
	}
	if h.db != nil {
		if version, err := h.db.DeclarationVersion(); err == nil {
			resp.Declaration = version
		}
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats := &models.HostStats{
			MemoryUsedPercent: vm.UsedPercent,
			MemoryTotalMB:     float64(vm.Total) / 1024 / 1024,
		}
		if up, err := host.Uptime(); err == nil {
			stats.UptimeSeconds = up
		}
		resp.Host = stats
	}

	c.JSON(http.StatusOK, resp)
}
