package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sentiview/internal/logx"
)

const ViewIDKey = "view_id"

// ViewSession 为每个浏览器分配一个视图 ID（保存在 cookie session 中）并写入 context
func ViewSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		id, _ := session.Get(ViewIDKey).(string)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			session.Set(ViewIDKey, id)
			if err := session.Save(); err != nil {
				logx.Error(err, "Failed to save view session")
			}
		}

		c.Set(ViewIDKey, id)
		c.Next()
	}
}

// ViewID 取出当前请求的视图 ID
func ViewID(c *gin.Context) string {
	return c.GetString(ViewIDKey)
}
