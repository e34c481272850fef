package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Database:  "ok",
		Metrics:   make(map[string]string),
	}

	if err := h.db.Raw("SELECT 1").Error; err != nil {
		response.Status = "error"
		response.Database = "error"
		logrus.Errorf("Database health check failed: %v", err)
	}

	if h.refresher.IsRunning() {
		response.Metrics["refresher"] = "running"
		response.Metrics["next_run"] = h.refresher.GetNextRun().Format(time.RFC3339)
		response.Metrics["last_run"] = h.refresher.GetLastRun().Format(time.RFC3339)
	} else {
		response.Metrics["refresher"] = "stopped"
	}

	statusCode := http.StatusOK
	if response.Status == "error" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// RunRefresherOnce triggers an immediate stats refresh
func (h *Handlers) RunRefresherOnce(c *gin.Context) {
	h.refresher.RunOnce()
	c.Status(http.StatusNoContent)
}

// GetRefresherStatus returns the stats refresher state
func (h *Handlers) GetRefresherStatus(c *gin.Context) {
	resp := RefresherStatusResponse{Running: h.refresher.IsRunning()}
	if resp.Running {
		next := h.refresher.GetNextRun()
		last := h.refresher.GetLastRun()
		resp.NextRun = &next
		if !last.IsZero() {
			resp.LastRun = &last
		}
	}
	c.JSON(http.StatusOK, resp)
}
