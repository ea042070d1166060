package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/linkvault/internal/database"
)

type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

// Health reports liveness and storage reachability
// GET /health
func (hc *HealthController) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK

	if sqlDB, err := hc.db.DB.DB(); err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":  status,
		"version": hc.version,
	})
}
