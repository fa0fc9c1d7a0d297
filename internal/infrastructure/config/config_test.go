package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("SERVER_PORT", "")
		t.Setenv("SWEEPER_INTERVAL", "")
		t.Setenv("CERTIFICATE_TIMEZONE", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Server.Port != "8080" || cfg.Sweeper.Interval != 5*time.Minute || cfg.Sweeper.MaxProcessingAge != 15*time.Minute {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.Rendering.Timezone != "America/Sao_Paulo" {
			t.Fatalf("unexpected timezone: %s", cfg.Rendering.Timezone)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("SWEEPER_INTERVAL", "30s")
		t.Setenv("MINIO_ENABLED", "true")
		t.Setenv("BASE_IMAGE_TIMEOUT", "not-a-duration")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Sweeper.Interval != 30*time.Second || !cfg.MinIO.Enabled {
			t.Fatalf("unexpected overrides: %+v", cfg)
		}
		if cfg.Rendering.BaseImageTimeout != 5*time.Second {
			t.Fatalf("invalid durations must fall back, got %v", cfg.Rendering.BaseImageTimeout)
		}
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid timezone", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("CERTIFICATE_TIMEZONE", "Mars/Olympus")
		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "CERTIFICATE_TIMEZONE") {
			t.Fatalf("expected timezone error, got %v", err)
		}
	})
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "reborn", SSLMode: "disable"}
	want := "host=db port=5432 user=u password=p dbname=reborn sslmode=disable"
	if got := p.DSN(); got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}
