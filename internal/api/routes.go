package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jroosing/fleetdns/internal/api/handlers"
	"github.com/jroosing/fleetdns/internal/api/middleware"
	"github.com/jroosing/fleetdns/internal/config"

	_ "github.com/jroosing/fleetdns/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health stays reachable without a key for probes.
	r.GET("/api/v1/health", h.Health)

	api := r.Group("/api/v1")
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/stats", h.Stats)

	api.GET("/declaration", h.GetDeclaration)
	api.PUT("/declaration", h.PutDeclaration)
	api.GET("/declaration/records", h.GetRecords)
	api.GET("/declaration/export", h.ExportZone)

	api.POST("/plan", h.CreatePlan)
	api.POST("/apply", h.Apply)

	api.GET("/runs", h.ListRuns)
	api.GET("/runs/:id", h.GetRun)
}
