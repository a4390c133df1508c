// internal/handlers/system.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/custom-creations-api/internal/services"
)

type SystemHandler struct {
	diagnosticsService *services.DiagnosticsService
	version            string
}

func NewSystemHandler(diagnosticsService *services.DiagnosticsService, version string) *SystemHandler {
	return &SystemHandler{diagnosticsService: diagnosticsService, version: version}
}

// GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Custom Creations Co. API is running"})
}

// GET /api/hello
func (h *SystemHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": h.version,
	})
}

// GET /test
func (h *SystemHandler) Diagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnosticsService.Report(c.Request.Context()))
}
