package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseUnverifiedToken_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signTestToken(t, jwt.RegisteredClaims{
		Subject:   "user-42",
		Issuer:    "vault-api",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	token, err := ParseUnverifiedToken(raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.Subject != "user-42" {
		t.Errorf("subject = %q, want user-42", token.Subject)
	}
	if !token.ExpiresAtTime().Equal(exp) {
		t.Errorf("expires at = %v, want %v", token.ExpiresAtTime(), exp)
	}
	if token.String() != raw {
		t.Errorf("expected SignedString to keep the raw token")
	}
}

func TestParseUnverifiedToken_ExpiredStillDecodes(t *testing.T) {
	raw := signTestToken(t, jwt.RegisteredClaims{
		Subject:   "u",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	if _, err := ParseUnverifiedToken(raw); err != nil {
		t.Fatalf("expected expired token to decode, got: %v", err)
	}
}

func TestParseUnverifiedToken_Malformed(t *testing.T) {
	if _, err := ParseUnverifiedToken("not.a.jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
