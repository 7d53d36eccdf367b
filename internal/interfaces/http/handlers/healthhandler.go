package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const appVersion = "1.0.0"

// HealthHandler answers liveness probes
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "apen",
		"version": appVersion,
	})
}
