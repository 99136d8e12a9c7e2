// Package config 从环境变量读取服务配置（.env 由 main 里的 godotenv 预先加载）。
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// AppConfig 服务运行所需的全部配置
type AppConfig struct {
	Environment string
	Port        int

	// 情感分析后端 API 的根地址，例如 http://localhost:5000
	BackendURL     string
	RequestTimeout time.Duration

	SessionSecret string

	// 评论列表的轮询间隔
	RefreshInterval time.Duration
	// 提示信息自动消失的时间
	UserAlertTTL    time.Duration
	CommentAlertTTL time.Duration

	// 日期按该时区展示
	Location *time.Location

	// 同时保留的视图（浏览器会话）数量上限
	MaxViews int
	// 视图超过这个时间没有请求（标签页已关闭）就被回收，停止它的轮询
	ViewIdleTTL time.Duration

	TemplatesDir string
	StaticDir    string

	// 写接口的按 IP 限流
	RateLimitRPS   float64
	RateLimitBurst int
}

// IsDevelopment 是否开发环境
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load 解析环境变量，缺省值见各字段
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.Environment = getEnv("ENVIRONMENT", "development")

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("port number %d is out of range", port)
	}
	cfg.Port = port

	backend := strings.TrimSuffix(getEnv("BACKEND_URL", "http://localhost:5000"), "/")
	u, err := url.Parse(backend)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid BACKEND_URL %q", backend)
	}
	cfg.BackendURL = backend

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("SESSION_SECRET environment variable is required in %s environment", cfg.Environment)
		}
		secret = "secret_key_change_me"
	}
	cfg.SessionSecret = secret

	durations := []struct {
		key  string
		def  string
		dest *time.Duration
	}{
		{"REQUEST_TIMEOUT", "30s", &cfg.RequestTimeout},
		{"REFRESH_INTERVAL", "10s", &cfg.RefreshInterval},
		{"USER_ALERT_TTL", "4s", &cfg.UserAlertTTL},
		{"COMMENT_ALERT_TTL", "5s", &cfg.CommentAlertTTL},
		{"VIEW_IDLE_TTL", "2m", &cfg.ViewIdleTTL},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(getEnv(d.key, d.def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s environment variable: %w", d.key, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %s", d.key, v)
		}
		*d.dest = v
	}
	// 打开着的页面每个刷新周期都会访问一次视图，空闲时间必须比它长
	if cfg.ViewIdleTTL <= cfg.RefreshInterval {
		return nil, fmt.Errorf("VIEW_IDLE_TTL (%s) must be longer than REFRESH_INTERVAL (%s)", cfg.ViewIdleTTL, cfg.RefreshInterval)
	}

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Europe/Madrid"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE environment variable: %w", err)
	}
	cfg.Location = loc

	maxViews, err := strconv.Atoi(getEnv("MAX_VIEWS", "500"))
	if err != nil || maxViews < 1 {
		return nil, fmt.Errorf("invalid MAX_VIEWS environment variable %q", os.Getenv("MAX_VIEWS"))
	}
	cfg.MaxViews = maxViews

	cfg.TemplatesDir = getEnv("TEMPLATES_DIR", "./web/templates")
	cfg.StaticDir = getEnv("STATIC_DIR", "./web/static")

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "2"), 64)
	if err != nil || rps <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS environment variable %q", os.Getenv("RATE_LIMIT_RPS"))
	}
	cfg.RateLimitRPS = rps

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10"))
	if err != nil || burst < 1 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST environment variable %q", os.Getenv("RATE_LIMIT_BURST"))
	}
	cfg.RateLimitBurst = burst

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
