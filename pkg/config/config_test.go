package config

import (
	"os"
	"testing"
	"time"
)

func setMinimalEnv(t *testing.T) {
	t.Helper()
	vars := map[string]string{
		"ECOLINK_APP_ENV":              "production",
		"ECOLINK_APP_PORT":             "8080",
		"ECOLINK_JWT_SECRET":           "test-secret",
		"ECOLINK_JWT_ISSUER":           "ecolink",
		"ECOLINK_CORS_ALLOWED_ORIGINS": "http://localhost:5173,http://localhost:3000",
		"ECOLINK_DB_DSN":               "postgres://eco:pw@localhost:5432/ecolink?sslmode=disable",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
	for _, k := range []string{"ECOLINK_DB_HOST", "ECOLINK_DB_USER", "ECOLINK_DB_NAME", "ECOLINK_DB_PASSWORD"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected IsProd to be true")
	}
	if got := cfg.JWT.AccessTokenTTL(); got != 24*time.Hour {
		t.Fatalf("expected default token TTL 24h, got %v", got)
	}
	if cfg.Geocoder.Timeout != 10*time.Second {
		t.Fatalf("expected default geocoder timeout 10s, got %v", cfg.Geocoder.Timeout)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 allowed origins, got %d", len(cfg.CORS.AllowedOrigins))
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv("ECOLINK_JWT_SECRET"); err != nil {
		t.Fatalf("failed to unset secret: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when jwt secret is missing")
	}
}

func TestLoad_AssemblesDSNFromParts(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("ECOLINK_DB_DSN", "")
	t.Setenv("ECOLINK_DB_HOST", "db.internal")
	t.Setenv("ECOLINK_DB_USER", "eco")
	t.Setenv("ECOLINK_DB_PASSWORD", "pw")
	t.Setenv("ECOLINK_DB_NAME", "ecolink")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	want := "postgres://eco:pw@db.internal:5432/ecolink?sslmode=disable"
	if cfg.DB.DSN != want {
		t.Fatalf("unexpected DSN %q, want %q", cfg.DB.DSN, want)
	}
}

func TestLoad_MissingDBParts(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("ECOLINK_DB_DSN", "")
	t.Setenv("ECOLINK_DB_HOST", "db.internal")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DSN and legacy parts are both incomplete")
	}
}
