package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testConfigYAML = `app:
  port: 8000
  gin_mode: release
  base_url: "http://localhost:8000"

database:
  dsn: "host=localhost dbname=complainto"

redis:
  addr: "localhost:6379"
  password: ""
  db: 0

jwt:
  secret: "file-secret"
  issuer: "complainto"
  access_ttl: "30m"

reset:
  token_ttl: "24h"

otp:
  ttl: "10m"

smtp:
  host: ""
  port: 2525
  username: ""
  password: ""
  from: "no-reply@complainto.local"

casbin:
  model_path: "config/casbin_model.conf"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTestConfig(t, testConfigYAML))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected port 8000, got %s", cfg.Port)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Errorf("expected secret from file, got %q", cfg.JWTSecret)
	}
	if cfg.AccessTTL != 30*time.Minute {
		t.Errorf("expected 30m access TTL, got %v", cfg.AccessTTL)
	}
	if cfg.ResetTokenTTL != 24*time.Hour {
		t.Errorf("expected 24h reset TTL, got %v", cfg.ResetTokenTTL)
	}
	if cfg.OTPTTL != 10*time.Minute {
		t.Errorf("expected 10m OTP TTL, got %v", cfg.OTPTTL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTestConfig(t, testConfigYAML))
	t.Setenv("PORT", "9090")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("DATABASE_DSN", "host=db dbname=prod")
	t.Setenv("SMTP_SERVER", "smtp.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("PORT override ignored, got %s", cfg.Port)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Errorf("SECRET_KEY override ignored, got %q", cfg.JWTSecret)
	}
	if cfg.DSN != "host=db dbname=prod" {
		t.Errorf("DATABASE_DSN override ignored, got %q", cfg.DSN)
	}
	if cfg.SMTPHost != "smtp.example.com" {
		t.Errorf("SMTP_SERVER override ignored, got %q", cfg.SMTPHost)
	}
}

func TestLoadFailures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yml"))
		if _, err := Load(); err == nil {
			t.Error("expected an error for a missing config file")
		}
	})

	t.Run("bad duration", func(t *testing.T) {
		bad := `jwt:
  secret: s
  issuer: i
  access_ttl: "not-a-duration"
reset:
  token_ttl: "24h"
otp:
  ttl: "10m"
`
		t.Setenv("CONFIG_PATH", writeTestConfig(t, bad))
		if _, err := Load(); err == nil {
			t.Error("expected an error for an unparsable duration")
		}
	})
}
