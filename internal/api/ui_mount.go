package api

import (
	"embed"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// Embedded UI assets. dist/ holds the landing page; a richer dashboard
// build can be dropped in without touching Go code.
//
//go:embed dist/*
var embeddedUI embed.FS

func uiFileSystem() static.ServeFileSystem {
	fs, err := static.EmbedFolder(embeddedUI, "dist")
	if err != nil {
		panic("failed to get embedded UI filesystem: " + err.Error())
	}
	return fs
}

// MountUI serves the embedded landing page for non-API routes.
func MountUI(r *gin.Engine, logger *slog.Logger) {
	distFS := uiFileSystem()
	r.Use(static.Serve("/", distFS))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.RequestURI, "/api") || strings.HasPrefix(c.Request.RequestURI, "/swagger") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if !distFS.Exists("/", "/index.html") {
			if logger != nil {
				logger.Error("embedded UI missing index.html")
			}
			c.Status(http.StatusNotFound)
			return
		}
		c.FileFromFS("index.html", distFS)
	})
}
