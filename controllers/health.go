package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aamagency-dev/sms-frontend/services"
)

type HealthController struct {
	Base
	Monitor *services.HealthMonitor
}

// Page renders the system-health screen from the monitor's cached snapshot.
func (h HealthController) Page(c *gin.Context) {
	snapshot, fetchedAt, err := h.Monitor.Snapshot()

	data := gin.H{
		"Health":    snapshot,
		"FetchedAt": fetchedAt.Format(time.RFC3339),
	}
	if err != nil {
		data["Error"] = "Health check failed: " + err.Error()
	}
	h.render(c, http.StatusOK, "health.html", data)
}

// Snapshot is the JSON endpoint the health page polls from the browser
// every 30 seconds to refresh in place.
func (h HealthController) Snapshot(c *gin.Context) {
	snapshot, fetchedAt, err := h.Monitor.Snapshot()

	resp := gin.H{
		"health":     snapshot,
		"fetched_at": fetchedAt,
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
