// Package handlers implements the REST API endpoint handlers for
// FleetDNS.
//
// REST API Endpoints:
//
// System:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Runtime statistics (uptime, memory, goroutines, host)
//
// Declaration (desired state):
//   - GET /api/v1/declaration - Currently stored declaration
//   - PUT /api/v1/declaration - Validate and store a new declaration version
//   - GET /api/v1/declaration/records - Derived record set preview
//   - GET /api/v1/declaration/export - Zone file rendering of the derived set
//
// Convergence:
//   - POST /api/v1/plan - Diff desired state against the provider (read-only)
//   - POST /api/v1/apply - Execute the plan against the provider
//   - GET /api/v1/runs - Recent apply runs
//   - GET /api/v1/runs/:id - One apply run
//
// All endpoints except /health require the X-API-Key header when an
// API key is configured.
//
// @title FleetDNS Management API
// @version 1.0
// @description REST API for managing fleet DNS declarations and applying them to a provider.
//
// @contact.name FleetDNS Support
// @contact.url https://github.com/jroosing/fleetdns
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jroosing/fleetdns/internal/config"
	"github.com/jroosing/fleetdns/internal/plan"
	"github.com/jroosing/fleetdns/internal/provider"
	"github.com/jroosing/fleetdns/internal/store"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	db        *store.DB
	logger    *slog.Logger
	startTime time.Time

	// Runtime components (set after construction)
	mu       sync.RWMutex
	provider provider.Provider
	applier  *plan.Applier
}

// New creates a Handler. db may be nil for handlers that never touch
// persistence (tests do this).
func New(cfg *config.Config, db *store.DB, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:       cfg,
		db:        db,
		logger:    logger,
		startTime: time.Now(),
	}
}

// SetProvider wires the DNS provider used by plan and apply.
func (h *Handler) SetProvider(p provider.Provider) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.provider = p
	h.applier = plan.NewApplier(p, h.logger)
}

// Provider returns the wired provider, nil when unset.
func (h *Handler) Provider() provider.Provider {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.provider
}

func (h *Handler) getApplier() *plan.Applier {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.applier
}
