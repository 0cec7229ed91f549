package jwt

import (
	"testing"
	"time"
)

const testSecret = "unit-test-secret"

func TestGenAndParseToken(t *testing.T) {
	claims := BuildClaims(time.Now().Add(time.Hour), 10086)
	tokenStr, err := GenToken(claims, testSecret)
	if err != nil {
		t.Fatalf("gen token err: %v", err)
	}

	parsed, err := ParseToken(tokenStr, testSecret)
	if err != nil {
		t.Fatalf("parse token err: %v", err)
	}
	if parsed.UserId != 10086 {
		t.Fatalf("user id mismatch: %d", parsed.UserId)
	}
	if parsed.Sub != "user" {
		t.Fatalf("unexpected sub: %s", parsed.Sub)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	claims := BuildClaims(time.Now().Add(time.Hour), 1)
	tokenStr, err := GenToken(claims, testSecret)
	if err != nil {
		t.Fatalf("gen token err: %v", err)
	}
	if _, err := ParseToken(tokenStr, "another-secret"); err == nil {
		t.Fatal("wrong secret should not validate")
	}
}

func TestParseTokenExpired(t *testing.T) {
	claims := BuildClaims(time.Now().Add(-time.Minute), 1)
	tokenStr, err := GenToken(claims, testSecret)
	if err != nil {
		t.Fatalf("gen token err: %v", err)
	}
	if _, err := ParseToken(tokenStr, testSecret); err == nil {
		t.Fatal("expired token should not validate")
	}
}
