package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/fleetdns/internal/api/models"
	"github.com/jroosing/fleetdns/internal/declaration"
	"github.com/jroosing/fleetdns/internal/store"
	"github.com/jroosing/fleetdns/internal/zonefile"
)

// currentDeclaration loads the stored declaration, writing the error
// response itself when there is none.
func (h *Handler) currentDeclaration(c *gin.Context) (*declaration.Declaration, int64, bool) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "store not configured"})
		return nil, 0, false
	}
	decl, version, err := h.db.CurrentDeclaration()
	if errors.Is(err, store.ErrNoDeclaration) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "no declaration stored"})
		return nil, 0, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return nil, 0, false
	}
	return decl, version, true
}

// GetDeclaration godoc
// @Summary Current declaration
// @Description Returns the currently stored declaration and its version
// @Tags declaration
// @Produce json
// @Success 200 {object} models.DeclarationResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /declaration [get]
func (h *Handler) GetDeclaration(c *gin.Context) {
	decl, version, ok := h.currentDeclaration(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.DeclarationResponse{Version: version, Declaration: *decl})
}

// PutDeclaration godoc
// @Summary Store a new declaration
// @Description Validates the declaration and stores it as a new version
// @Tags declaration
// @Accept json
// @Produce json
// @Param declaration body declaration.Declaration true "Declaration"
// @Success 200 {object} models.DeclarationUpdateResponse
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /declaration [put]
func (h *Handler) PutDeclaration(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "store not configured"})
		return
	}

	var decl declaration.Declaration
	if err := c.ShouldBindJSON(&decl); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid declaration body: " + err.Error()})
		return
	}

	// Round-trip through Parse so PUT bodies get the same defaulting
	// and validation as declaration files.
	raw, err := decl.Marshal()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	validated, err := declaration.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	version, err := h.db.SaveDeclaration(validated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	h.logger.Info("declaration updated",
		"domain", validated.Zone.Domain,
		"version", version,
		"servers", validated.ServerCount,
	)
	c.JSON(http.StatusOK, models.DeclarationUpdateResponse{Status: "ok", Version: version})
}

// GetRecords godoc
// @Summary Derived record set
// @Description Returns the records the current declaration derives
// @Tags declaration
// @Produce json
// @Success 200 {object} models.RecordListResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /declaration/records [get]
func (h *Handler) GetRecords(c *gin.Context) {
	decl, _, ok := h.currentDeclaration(c)
	if !ok {
		return
	}
	records := decl.Derive()
	c.JSON(http.StatusOK, models.RecordListResponse{
		Domain:  decl.Zone.Domain,
		Records: records,
		Count:   len(records),
	})
}

// ExportZone godoc
// @Summary Zone file export
// @Description Renders the derived record set as BIND zone file text
// @Tags declaration
// @Produce plain
// @Success 200 {string} string "zone file"
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /declaration/export [get]
func (h *Handler) ExportZone(c *gin.Context) {
	decl, _, ok := h.currentDeclaration(c)
	if !ok {
		return
	}
	out, err := zonefile.Export(decl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.String(http.StatusOK, out)
}
