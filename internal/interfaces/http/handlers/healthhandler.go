package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/version"
)

const healthCheckTimeout = 3 * time.Second

// Pinger is a dependency the health check probes.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]Pinger
	logger logger.Interface
}

func NewHealthHandler(checks map[string]Pinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{checks: checks, logger: logger}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	healthy := true
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			h.logger.Warnw("health check failed", "dependency", name, "error", err)
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}

	data := gin.H{"service": "goldvault", "version": version.String(), "dependencies": status}
	if !healthy {
		utils.ErrorResponseWithData(c, http.StatusServiceUnavailable, "Service unhealthy", data)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Service healthy", data)
}
