package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", ExpirationMinutes: 30}
}

func TestMintAndParseAccessToken(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	userID := uuid.New()
	now := time.Now().UTC()

	token, err := MintAccessToken(cfg, now, userID, 30*time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	parsedID, err := claims.UserID()
	if err != nil {
		t.Fatalf("subject: %v", err)
	}
	if parsedID != userID {
		t.Fatalf("subject mismatch: got %s want %s", parsedID, userID)
	}

	expiry := claims.ExpiresAt.Time
	want := now.Add(30 * time.Minute)
	if diff := expiry.Sub(want); diff > time.Second || diff < -time.Second {
		t.Fatalf("unexpected expiry: got %s want %s", expiry, want)
	}
}

func TestMintAccessTokenFallbackTTL(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	now := time.Now().UTC()

	token, err := MintAccessToken(cfg, now, uuid.New(), 0)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := now.Add(15 * time.Minute)
	if diff := claims.ExpiresAt.Time.Sub(want); diff > time.Second || diff < -time.Second {
		t.Fatalf("expected fallback ttl, got expiry %s", claims.ExpiresAt.Time)
	}
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := MintAccessToken(testJWTConfig(), time.Now().UTC(), uuid.New(), time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAccessToken(config.JWTConfig{Secret: "other-secret"}, token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	past := time.Now().UTC().Add(-time.Hour)

	token, err := MintAccessToken(cfg, past, uuid.New(), time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestParseAccessTokenGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseAccessToken(testJWTConfig(), "not.a.token"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := ParseAccessToken(testJWTConfig(), strings.Repeat("a", 64)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMintAccessTokenRequiresUser(t *testing.T) {
	t.Parallel()

	if _, err := MintAccessToken(testJWTConfig(), time.Now().UTC(), uuid.Nil, time.Minute); err == nil {
		t.Fatal("expected error for nil user id")
	}
}
