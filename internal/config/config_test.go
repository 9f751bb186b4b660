package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "skill-pulse")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
	t.Setenv("ASSESSMENT_COOLDOWN_HOURS", "24")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.HTTPPort != "8080" {
		t.Fatalf("unexpected port %q", cfg.App.HTTPPort)
	}
	if cfg.Assessment.Cooldown != 24*time.Hour {
		t.Fatalf("unexpected cooldown %v", cfg.Assessment.Cooldown)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("unexpected access ttl %v", cfg.JWT.AccessExpiresIn)
	}
	if cfg.JWT.RefreshExpiresIn != 7*24*time.Hour {
		t.Fatalf("unexpected refresh ttl %v", cfg.JWT.RefreshExpiresIn)
	}
}

func TestLoad_MissingRequiredAggregated(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("ASSESSMENT_COOLDOWN_HOURS", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, key := range []string{"JWT_ACCESS_SECRET", "ASSESSMENT_COOLDOWN_HOURS"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error should name %s: %v", key, err)
		}
	}
}

func TestLoad_InvalidCooldown(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ASSESSMENT_COOLDOWN_HOURS", "0")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "ASSESSMENT_COOLDOWN_HOURS") {
		t.Fatalf("expected invalid cooldown error, got %v", err)
	}
}

func TestLoad_TTLOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_TTL_MINUTES", "30")
	t.Setenv("JWT_REFRESH_TTL_MINUTES", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.JWT.AccessExpiresIn != 30*time.Minute {
		t.Fatalf("unexpected access ttl %v", cfg.JWT.AccessExpiresIn)
	}
	if cfg.JWT.RefreshExpiresIn != time.Hour {
		t.Fatalf("unexpected refresh ttl %v", cfg.JWT.RefreshExpiresIn)
	}
}
