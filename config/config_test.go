package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Postgres.Host != "localhost" {
		t.Errorf("expected default DB host localhost, got %q", cfg.Postgres.Host)
	}
	if cfg.Postgres.Port != 5432 {
		t.Errorf("expected default DB port 5432, got %d", cfg.Postgres.Port)
	}
	if !cfg.Postgres.RunMigrationsOnStart {
		t.Error("expected migrations to run on start by default")
	}
	if cfg.Redis.URI != "localhost:6379" {
		t.Errorf("expected default redis URI localhost:6379, got %q", cfg.Redis.URI)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default HTTP addr :8080, got %q", cfg.HTTP.Addr)
	}
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "qf")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "qfdb")
	t.Setenv("REDIS_URI", "redis.internal:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("HTTP_ADDR", ":9090")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	if cfg.Postgres.Host != "db.internal" {
		t.Errorf("expected DB host db.internal, got %q", cfg.Postgres.Host)
	}
	if cfg.Postgres.Port != 5433 {
		t.Errorf("expected DB port 5433, got %d", cfg.Postgres.Port)
	}
	if cfg.Redis.URI != "redis.internal:6380" {
		t.Errorf("expected redis URI redis.internal:6380, got %q", cfg.Redis.URI)
	}
	if cfg.Redis.DB != 2 {
		t.Errorf("expected redis DB 2, got %d", cfg.Redis.DB)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("expected HTTP addr :9090, got %q", cfg.HTTP.Addr)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	tests := []struct {
		name     string
		dev      string
		nodeEnv  string
		expected bool
	}{
		{name: "default", dev: "", nodeEnv: "", expected: false},
		{name: "dev flag", dev: "true", nodeEnv: "", expected: true},
		{name: "node env development", dev: "", nodeEnv: "development", expected: true},
		{name: "node env dev", dev: "", nodeEnv: "dev", expected: true},
		{name: "node env production", dev: "", nodeEnv: "production", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.dev != "" {
				t.Setenv("DEV", tt.dev)
			}
			if tt.nodeEnv != "" {
				t.Setenv("NODE_ENV", tt.nodeEnv)
			}

			var cfg AppConfig
			if err := env.Parse(&cfg); err != nil {
				t.Fatalf("parse config: %v", err)
			}
			cfg.Sanitize()

			if cfg.IsDev != tt.expected {
				t.Errorf("expected IsDev=%v, got %v", tt.expected, cfg.IsDev)
			}
		})
	}
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	cfg := HTTPConfig{Addr: "", ShutdownTimeout: -1}
	cfg.Sanitize()

	if cfg.Addr != ":8080" {
		t.Errorf("expected addr fallback :8080, got %q", cfg.Addr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected shutdown timeout fallback 10s, got %v", cfg.ShutdownTimeout)
	}
}
