package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/fleetdns/internal/api/models"
	"github.com/jroosing/fleetdns/internal/store"
)

// CreatePlan godoc
// @Summary Plan changes
// @Description Diffs the current declaration against the provider without writing anything
// @Tags convergence
// @Produce json
// @Success 200 {object} models.PlanResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /plan [post]
func (h *Handler) CreatePlan(c *gin.Context) {
	applier := h.getApplier()
	if applier == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "provider not configured"})
		return
	}
	decl, _, ok := h.currentDeclaration(c)
	if !ok {
		return
	}

	p, err := applier.Plan(c.Request.Context(), decl)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.NewPlanResponse(p))
}

// Apply godoc
// @Summary Apply the declaration
// @Description Ensures the zone exists and converges provider records to the declaration
// @Tags convergence
// @Produce json
// @Success 200 {object} models.ApplyResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /apply [post]
func (h *Handler) Apply(c *gin.Context) {
	applier := h.getApplier()
	if applier == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "provider not configured"})
		return
	}
	decl, version, ok := h.currentDeclaration(c)
	if !ok {
		return
	}

	started := time.Now().UTC()
	result, err := applier.Apply(c.Request.Context(), decl)
	finished := time.Now().UTC()

	status := store.RunApplied
	errText := ""
	if err != nil {
		status = store.RunFailed
		errText = err.Error()
	} else if !result.OK() {
		status = store.RunFailed
		errText = result.Failures[0].Error
	}

	if result.RunID != "" {
		run := store.Run{
			ID:                 result.RunID,
			DeclarationVersion: version,
			Domain:             decl.Zone.Domain,
			Status:             status,
			Created:            result.Created,
			Updated:            result.Updated,
			Deleted:            result.Deleted,
			Error:              errText,
			StartedAt:          started,
			FinishedAt:         finished,
		}
		if recErr := h.db.RecordRun(run); recErr != nil {
			h.logger.Error("failed to persist run", "run_id", run.ID, "error", recErr)
		}
	}

	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ApplyResponse{
		RunID:    result.RunID,
		Domain:   result.Domain,
		Status:   status,
		Created:  result.Created,
		Updated:  result.Updated,
		Deleted:  result.Deleted,
		Failures: result.Failures,
	})
}

// ListRuns godoc
// @Summary Recent apply runs
// @Description Returns recent apply runs, newest first
// @Tags convergence
// @Produce json
// @Param limit query int false "Maximum number of runs" default(50)
// @Success 200 {object} models.RunListResponse
// @Security ApiKeyAuth
// @Router /runs [get]
func (h *Handler) ListRuns(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "store not configured"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	runs, err := h.db.ListRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}
	c.JSON(http.StatusOK, models.RunListResponse{Runs: runs, Count: len(runs)})
}

// GetRun godoc
// @Summary One apply run
// @Description Returns a single apply run by ID
// @Tags convergence
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} store.Run
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /runs/{id} [get]
func (h *Handler) GetRun(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "store not configured"})
		return
	}

	run, err := h.db.GetRun(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "run not found"})
		return
	}
	c.JSON(http.StatusOK, run)
}
