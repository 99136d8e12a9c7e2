package router

import (
	"sentiview/internal/handlers"
	"sentiview/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers 路由需要的全部 handler
type Handlers struct {
	Dashboard   *handlers.DashboardHandler
	Health      *handlers.HealthHandler
	WriteLimits *middleware.IPRateLimiter
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", h.Health.Health)         // 健康检查
	r.GET("/api/stats", h.Health.Statistics) // 后端聚合统计

	view := r.Group("/")
	view.Use(middleware.ViewSession())
	{
		view.GET("", h.Dashboard.Index) // 面板主页

		// HTMX 局部片段
		view.GET("/partials/users", h.Dashboard.Users)
		view.GET("/partials/comments", h.Dashboard.Comments)
		view.GET("/partials/alert/:slot", h.Dashboard.Alert)
		view.POST("/filter/:sentiment", h.Dashboard.Filter)

		// 写操作按 IP 限流
		writes := view.Group("/")
		if h.WriteLimits != nil {
			writes.Use(h.WriteLimits.Middleware())
		}
		writes.POST("/users", h.Dashboard.RegisterUser)     // 注册用户
		writes.POST("/comments", h.Dashboard.CreateComment) // 发表评论并分析
		writes.POST("/analyze", h.Dashboard.QuickAnalysis)  // 快速分析
	}
}
