package handlers

import (
	"github.com/gin-gonic/gin"

	"sentiview/internal/middleware"
)

// Render 渲染整页模板，注入公共变量
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}
	obj["CurrentPath"] = c.Request.URL.Path
	obj["ViewID"] = middleware.ViewID(c)

	c.HTML(code, name, obj)
}

// Partial 渲染 HTMX 局部片段
func Partial(c *gin.Context, code int, name string, obj gin.H) {
	c.HTML(code, name, obj)
}

// HtmxTrigger 让前端在响应后触发事件（用于刷新依赖的片段）
func HtmxTrigger(c *gin.Context, event string) {
	c.Header("HX-Trigger", event)
}

const (
	EventUsersChanged    = "users-changed"
	EventCommentsChanged = "comments-changed"
)
