package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"sentiview/internal/logx"
)

// RequestLogger 用 zerolog 记录每个请求的方法、路径、状态码和耗时
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		logger := logx.Logger()
		event := logger.Info()
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		case c.GetHeader("HX-Request") == "true":
			// HTMX 的局部刷新和轮询太多，降到 debug
			event = logger.Debug()
		}

		event.
			Str("component", "http").
			Str("method", c.Request.Method).
			Str("path", path).
			Str("client_ip", c.ClientIP()).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Msg("Request completed")
	}
}
