package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"sentiview/internal/logx"
)

// IPRateLimiter 按客户端 IP 的令牌桶限流，用在写接口上
type IPRateLimiter struct {
	mu     sync.Mutex
	limits map[string]*rate.Limiter
	r      rate.Limit
	b      int
	stop   chan struct{}
	once   sync.Once
}

// NewIPRateLimiter 创建限流器并启动后台清理
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	l := &IPRateLimiter{
		limits: make(map[string]*rate.Limiter),
		r:      r,
		b:      b,
		stop:   make(chan struct{}),
	}
	go l.cleanup(3 * time.Minute)
	return l
}

func (l *IPRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limits[ip]
	if !ok {
		lim = rate.NewLimiter(l.r, l.b)
		l.limits[ip] = lim
	}
	return lim
}

// 令牌桶已满的 IP 说明一段时间没有请求，可以移除
func (l *IPRateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			removed := 0
			for ip, lim := range l.limits {
				if lim.TokensAt(time.Now()) >= float64(lim.Burst()) {
					delete(l.limits, ip)
					removed++
				}
			}
			remaining := len(l.limits)
			l.mu.Unlock()
			logx.Debug("Rate limiter cleanup", "removed", removed, "remaining", remaining)
		}
	}
}

// Close 停止后台清理
func (l *IPRateLimiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

// Middleware 超出限制返回 429，并带上可直接插入页面的提示片段
func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown_ip"
		}

		if !l.limiter(ip).Allow() {
			logx.Warn("Rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			c.Header("HX-Reswap", "none")
			c.String(http.StatusTooManyRequests, "❌ Demasiadas solicitudes, inténtalo de nuevo en unos segundos")
			c.Abort()
			return
		}
		c.Next()
	}
}
