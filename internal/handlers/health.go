package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health with DB and Redis probes.
func (h *Handler) Health(c *gin.Context) {
	dbStatus := "ok"
	redisStatus := "ok"

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "error"
	}

	if h.cache.Available() {
		if err := h.cache.Ping(c.Request.Context()); err != nil {
			redisStatus = "error"
		}
	} else {
		redisStatus = "not configured"
	}

	status := "ok"
	if dbStatus != "ok" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"checks": gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
