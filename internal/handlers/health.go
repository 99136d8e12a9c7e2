package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sentiview/internal/dashboard"
	"sentiview/internal/logx"
	"sentiview/internal/models"
	"sentiview/internal/utils"
)

// BackendInfo 后端的健康检查和聚合统计
type BackendInfo interface {
	Health(ctx context.Context) (*models.BackendHealth, error)
	CommentStatistics(ctx context.Context) (*models.CommentStatistics, error)
}

const backendHealthTTL = 5 * time.Second

type HealthHandler struct {
	backend  BackendInfo
	registry *dashboard.Registry
	cache    *utils.TTLCache[*models.BackendHealth]
}

func NewHealthHandler(backend BackendInfo, registry *dashboard.Registry) *HealthHandler {
	cache, err := utils.NewTTLCache[*models.BackendHealth](8)
	if err != nil {
		logx.Fatal(err, "Failed to create health cache")
	}
	return &HealthHandler{backend: backend, registry: registry, cache: cache}
}

// Health 本服务和后端的健康状态，后端结果缓存 5 秒
func (h *HealthHandler) Health(c *gin.Context) {
	health, err := h.cache.GetOrLoad("backend", backendHealthTTL, func() (*models.BackendHealth, error) {
		return h.backend.Health(c.Request.Context())
	})
	if err != nil {
		logx.Warn("Backend health check failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "degraded",
			"backend": gin.H{"status": "unreachable"},
			"views":   h.registry.Len(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"backend": health,
		"views":   h.registry.Len(),
	})
}

// Statistics 透传后端的聚合统计（按情感分组）
func (h *HealthHandler) Statistics(c *gin.Context) {
	stats, err := h.backend.CommentStatistics(c.Request.Context())
	if err != nil {
		logx.Error(err, "Error loading backend statistics")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al obtener estadísticas"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
