package handler

import (
	"context"
	"net/http"

	"go-gin-event-program/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is satisfied by *pgxpool.Pool. Wrap other clients in PingFunc.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	deps map[string]Pinger
}

// NewHealthHandler checks every named dependency; nil entries are skipped.
func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	checked := make(map[string]Pinger, len(deps))
	for name, p := range deps {
		if p != nil {
			checked[name] = p
		}
	}
	return &HealthHandler{deps: checked}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("healthz", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	failed := make(map[string]string)
	for name, p := range h.deps {
		if err := p.Ping(c); err != nil {
			logger.WithComponent("handler").Warn("Health check failed",
				zap.String("dependency", name), zap.Error(err))
			failed[name] = "unavailable"
		}
	}

	if len(failed) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "dependencies": failed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
