package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Oracle    string `json:"oracle"`
}

// HandleHealth returns the health status of the service.
// Used as the liveness probe; a missing oracle only degrades it.
func HandleHealth(c *gin.Context) {
	status := "healthy"
	oracleName := "unavailable"
	if svc := currentService(); svc.Ready() {
		oracleName = svc.OracleName()
	} else {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Oracle:    oracleName,
	})
}

// HandleReadiness returns whether the service is ready to accept traffic.
// Stricter than health: 503 until the oracle is loaded.
func HandleReadiness(c *gin.Context) {
	if !currentService().Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "oracle_not_initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
