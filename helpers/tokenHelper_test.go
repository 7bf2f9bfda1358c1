package helpers

import (
	"strings"
	"testing"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	token, err := GenerateToken("user123", "alice@example.com", "Alice", true)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Uid != "user123" {
		t.Errorf("got uid %q, want user123", claims.Uid)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("got email %q", claims.Email)
	}
	if claims.Name != "Alice" {
		t.Errorf("got name %q", claims.Name)
	}
	if !claims.IsAdmin {
		t.Errorf("admin flag was lost")
	}
	if claims.Subject != "user123" {
		t.Errorf("got subject %q, want user123", claims.Subject)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	token, err := GenerateToken("user123", "alice@example.com", "Alice", false)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	if _, err := ValidateToken(tampered); err == nil {
		t.Fatalf("tampered token must not validate")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "secret-one")
	token, err := GenerateToken("user123", "alice@example.com", "Alice", false)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	t.Setenv("SECRET_KEY", "secret-two")
	if _, err := ValidateToken(token); err == nil {
		t.Fatalf("token signed with another secret must not validate")
	}
}

func TestSecretKeyReadPerCall(t *testing.T) {
	// The key must reflect the environment at call time, not whatever was
	// set when the package initialized, so secrets loaded from .env work.
	t.Setenv("SECRET_KEY", "late-loaded-secret")
	token, err := GenerateToken("user123", "alice@example.com", "Alice", false)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, err := ValidateToken(token); err != nil {
		t.Fatalf("ValidateToken failed with the current env secret: %v", err)
	}

	t.Setenv("SECRET_KEY", "rotated-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatalf("token must not validate after the secret changed")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatalf("garbage must not validate")
	}
}
