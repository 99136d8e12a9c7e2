package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ENVIRONMENT", "PORT", "BACKEND_URL", "SESSION_SECRET", "REFRESH_INTERVAL", "USER_ALERT_TTL", "COMMENT_ALERT_TTL", "TIMEZONE", "MAX_VIEWS", "VIEW_IDLE_TTL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Port)
	}
	if cfg.BackendURL != "http://localhost:5000" {
		t.Errorf("Unexpected backend url %s", cfg.BackendURL)
	}
	if cfg.RefreshInterval != 10*time.Second {
		t.Errorf("Expected 10s refresh, got %s", cfg.RefreshInterval)
	}
	if cfg.UserAlertTTL != 4*time.Second || cfg.CommentAlertTTL != 5*time.Second {
		t.Errorf("Unexpected alert ttl %s / %s", cfg.UserAlertTTL, cfg.CommentAlertTTL)
	}
	if cfg.ViewIdleTTL != 2*time.Minute {
		t.Errorf("Expected 2m view idle ttl, got %s", cfg.ViewIdleTTL)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("Expected development environment by default")
	}
}

func TestLoadRejectsIdleTTLShorterThanRefresh(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "30s")
	t.Setenv("VIEW_IDLE_TTL", "20s")
	if _, err := Load(); err == nil {
		t.Fatal("Expected error when views would expire between refreshes")
	}
}

func TestLoadTrimsBackendURL(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://api.local:5000/")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BackendURL != "http://api.local:5000" {
		t.Errorf("Expected trailing slash removed, got %s", cfg.BackendURL)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":             "abc",
		"BACKEND_URL":      "not a url",
		"REFRESH_INTERVAL": "-1s",
		"TIMEZONE":         "Mars/Olympus",
		"MAX_VIEWS":        "0",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Errorf("Expected error for %s=%s", key, val)
			}
		})
	}
}

func TestProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SESSION_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("Expected error when SESSION_SECRET is missing in production")
	}
}
