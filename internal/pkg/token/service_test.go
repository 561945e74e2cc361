package token

import (
	"errors"
	"testing"
	"time"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	raw, err := svc.Generate("ops")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.Validate(raw)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != "ops" {
		t.Fatalf("expected subject ops, got %q", claims.Subject)
	}
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	raw, err := svc.Generate("ops")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.Validate(raw); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	raw, err := NewHMACService("one", time.Hour).Generate("ops")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewHMACService("two", time.Hour).Validate(raw); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_GenerateRequiresConfig(t *testing.T) {
	if _, err := NewHMACService("", time.Hour).Generate("ops"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("empty secret: expected ErrTokenInvalid, got %v", err)
	}
	if _, err := NewHMACService("secret", 0).Generate("ops"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("zero lifetime: expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_RejectsGarbage(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.Validate("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
