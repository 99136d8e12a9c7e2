package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sentiview/internal/dashboard"
	"sentiview/internal/middleware"
	"sentiview/internal/models"
)

type DashboardHandler struct {
	registry *dashboard.Registry
}

func NewDashboardHandler(registry *dashboard.Registry) *DashboardHandler {
	return &DashboardHandler{registry: registry}
}

// current 当前会话的视图模型，首次访问时创建
func (h *DashboardHandler) current(c *gin.Context) *dashboard.Dashboard {
	return h.registry.Get(c.Request.Context(), middleware.ViewID(c))
}

func viewData(v dashboard.View) gin.H {
	return gin.H{
		"View":       v,
		"Sentiments": models.Sentiments,
	}
}

// Index 面板主页
func (h *DashboardHandler) Index(c *gin.Context) {
	data := viewData(h.current(c).Snapshot())
	data["Title"] = "Sistema de Análisis de Sentimientos"
	Render(c, http.StatusOK, "dashboard/index.html", data)
}

// Users HTMX 接口，用户下拉框 + 用户总数
func (h *DashboardHandler) Users(c *gin.Context) {
	Partial(c, http.StatusOK, "partials/users.html", viewData(h.current(c).Snapshot()))
}

// Comments HTMX 接口，评论列表 + 统计（轮询也走这里，只渲染当前快照）
func (h *DashboardHandler) Comments(c *gin.Context) {
	Partial(c, http.StatusOK, "partials/comments.html", viewData(h.current(c).Snapshot()))
}

// Filter HTMX 接口，切换筛选条件后返回评论列表
func (h *DashboardHandler) Filter(c *gin.Context) {
	f, ok := models.ParseFilter(c.Param("sentiment"))
	if !ok {
		c.String(http.StatusBadRequest, "Filtro no válido")
		return
	}

	d := h.current(c)
	d.SetFilter(f)
	Partial(c, http.StatusOK, "partials/comments.html", viewData(d.Snapshot()))
}

// Alert HTMX 接口，提示区域；过期后返回空容器
func (h *DashboardHandler) Alert(c *gin.Context) {
	slot, ok := dashboard.ParseAlertSlot(c.Param("slot"))
	if !ok {
		c.String(http.StatusNotFound, "")
		return
	}

	v := h.current(c).Snapshot()
	alert := v.UserAlert
	if slot == dashboard.AlertComments {
		alert = v.CommentAlert
	}

	Partial(c, http.StatusOK, "partials/alert.html", gin.H{
		"ID":    slot.ElementID(),
		"Slot":  string(slot),
		"Alert": alert,
		"Now":   v.Now,
	})
}
