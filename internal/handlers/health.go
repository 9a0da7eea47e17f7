package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/studyring/reputation-backend/internal/clock"
	"github.com/studyring/reputation-backend/internal/models"
	"github.com/studyring/reputation-backend/internal/services"
)

// HealthHandler provides enhanced health check endpoints.
type HealthHandler struct {
	clock *clock.LogicalClock
}

func NewHealthHandler(clk *clock.LogicalClock) *HealthHandler {
	return &HealthHandler{clock: clk}
}

// CheckHealth returns the health status of all subsystems.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	// Database check
	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	// Queue mode
	taskQueue := services.GetTaskQueue()
	queueMode := "sync"
	if taskQueue != nil && taskQueue.IsAsync() {
		queueMode = "async (Redis)"
	}

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "reputation-backend",
		"components": gin.H{
			"database":   dbStatus,
			"queue_mode": queueMode,
			"tick":       h.clock.Now(),
		},
	})
}
