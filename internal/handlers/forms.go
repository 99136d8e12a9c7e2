package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sentiview/internal/utils"
)

// RegisterUser 注册表单提交，返回重新渲染的表单（含提示）
func (h *DashboardHandler) RegisterUser(c *gin.Context) {
	d := h.current(c)

	if d.RegisterUser(c.Request.Context(), c.PostForm("name"), c.PostForm("email")) {
		HtmxTrigger(c, EventUsersChanged)
	}
	Partial(c, http.StatusOK, "partials/user_form.html", viewData(d.Snapshot()))
}

// CreateComment 评论表单提交，后端同步完成情感分析
func (h *DashboardHandler) CreateComment(c *gin.Context) {
	d := h.current(c)

	userID := utils.FormInt(c.PostForm("user_id"))
	if d.SubmitComment(c.Request.Context(), userID, c.PostForm("text")) {
		HtmxTrigger(c, EventCommentsChanged)
	}
	Partial(c, http.StatusOK, "partials/comment_form.html", viewData(d.Snapshot()))
}

// QuickAnalysis 快速分析，不保存
func (h *DashboardHandler) QuickAnalysis(c *gin.Context) {
	out := h.current(c).QuickAnalysis(c.Request.Context(), c.PostForm("text"))
	Partial(c, http.StatusOK, "partials/quick_result.html", gin.H{"Quick": out})
}
