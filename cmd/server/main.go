package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"sentiview/internal/config"
	"sentiview/internal/dashboard"
	"sentiview/internal/handlers"
	"sentiview/internal/logx"
	"sentiview/internal/middleware"
	"sentiview/internal/router"
	"sentiview/internal/services"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logx.Init(true)
		logx.Fatal(err, "Failed to load configuration")
	}
	logx.Init(cfg.IsDevelopment())
	if envErr != nil {
		logx.Debug("No .env file found, using env vars from system")
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// Setup Sessions
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("sentiview_session", store))

	renderer, err := router.LoadTemplates(cfg.TemplatesDir, cfg.Location)
	if err != nil {
		logx.Fatal(err, "Failed to load templates", "dir", cfg.TemplatesDir)
	}
	r.HTMLRender = renderer

	// Static Assets
	r.Static("/static", cfg.StaticDir)

	client := services.NewBackendClient(cfg.BackendURL, cfg.RequestTimeout)

	sched := services.NewRefreshScheduler()
	sched.Start()

	registry, err := dashboard.NewRegistry(cfg.MaxViews, cfg.ViewIdleTTL, client, sched, dashboard.Options{
		RefreshInterval: cfg.RefreshInterval,
		UserAlertTTL:    cfg.UserAlertTTL,
		CommentAlertTTL: cfg.CommentAlertTTL,
	})
	if err != nil {
		logx.Fatal(err, "Failed to create view registry")
	}

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	router.RegisterRoutes(r, router.Handlers{
		Dashboard:   handlers.NewDashboardHandler(registry),
		Health:      handlers.NewHealthHandler(client, registry),
		WriteLimits: limiter,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logx.Info("Sentiview server starting", "port", cfg.Port, "backend", cfg.BackendURL, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal(err, "HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logx.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logx.Error(err, "Server forced to shutdown")
	}

	registry.Close()
	sched.Stop()
	limiter.Close()

	logx.Info("Server exited")
}
