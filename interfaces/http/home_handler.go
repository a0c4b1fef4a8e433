package http

import (
	"context"
	"net/http"
	"time"

	"bgm-auto-tracker/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether a backing store is reachable.
type HealthCheck func(ctx context.Context) error

// IHomeHandler defines the interface for the landing and health handlers
type IHomeHandler interface {
	Home(c *gin.Context)
	Healthz(c *gin.Context)
}

// HomeHandler serves the landing redirect and health checks
type HomeHandler struct {
	projectURL string
	check      HealthCheck
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(projectURL string, check HealthCheck) IHomeHandler {
	return &HomeHandler{projectURL: projectURL, check: check}
}

// Home redirects to the project page
func (h *HomeHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, h.projectURL)
}

// Healthz returns OK for health checks
func (h *HomeHandler) Healthz(c *gin.Context) {
	if h.check != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.check(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
