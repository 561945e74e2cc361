package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "skill-compass")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing APP_NAME")
	}
	if !strings.Contains(err.Error(), "APP_NAME") {
		t.Fatalf("error should name the missing variable, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ENGINE_DEFAULT_LIMIT", "")
	t.Setenv("ENGINE_MAX_LIMIT", "")
	t.Setenv("ENGINE_CANDIDATE_FLOOR", "")
	t.Setenv("ENGINE_GAP_CONCURRENCY", "")
	t.Setenv("ENGINE_CACHE_TTL", "")
	t.Setenv("AUTH_TOKEN_LIFETIME", "")
	t.Setenv("DB_CONNECT_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Engine.DefaultLimit != 10 || cfg.Engine.MaxLimit != 100 {
		t.Fatalf("unexpected limit defaults: %+v", cfg.Engine)
	}
	if cfg.Engine.CandidateFloor != 50 || cfg.Engine.GapConcurrency != 8 {
		t.Fatalf("unexpected engine defaults: %+v", cfg.Engine)
	}
	if cfg.Engine.CacheTTL != 10*time.Minute {
		t.Fatalf("unexpected cache TTL: %v", cfg.Engine.CacheTTL)
	}
	if cfg.Auth.TokenLifetime != 24*time.Hour {
		t.Fatalf("unexpected token lifetime: %v", cfg.Auth.TokenLifetime)
	}
	if cfg.Database.ConnectTimeout != 5*time.Second {
		t.Fatalf("unexpected connect timeout: %v", cfg.Database.ConnectTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ENGINE_DEFAULT_LIMIT", "25")
	t.Setenv("ENGINE_CACHE_TTL", "1m")
	t.Setenv("AUTH_TOKEN_SECRET", "sekrit")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Engine.DefaultLimit != 25 {
		t.Fatalf("expected override 25, got %d", cfg.Engine.DefaultLimit)
	}
	if cfg.Engine.CacheTTL != time.Minute {
		t.Fatalf("expected 1m TTL, got %v", cfg.Engine.CacheTTL)
	}
	if cfg.Auth.TokenSecret != "sekrit" {
		t.Fatalf("unexpected token secret: %q", cfg.Auth.TokenSecret)
	}
}

func TestOptInt_RejectsGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	if got := optInt("SOME_INT", 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
	t.Setenv("SOME_INT", "-3")
	if got := optInt("SOME_INT", 7); got != 7 {
		t.Fatalf("negative values fall back, got %d", got)
	}
}

func TestOptDuration_PlainSeconds(t *testing.T) {
	t.Setenv("SOME_DUR", "30")
	if got := optDuration("SOME_DUR", time.Second); got != 30*time.Second {
		t.Fatalf("bare integers read as seconds, got %v", got)
	}
	t.Setenv("SOME_DUR", "2m")
	if got := optDuration("SOME_DUR", time.Second); got != 2*time.Minute {
		t.Fatalf("duration strings pass through, got %v", got)
	}
	t.Setenv("SOME_DUR", "soon")
	if got := optDuration("SOME_DUR", time.Second); got != time.Second {
		t.Fatalf("expected fallback, got %v", got)
	}
}
