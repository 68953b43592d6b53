package utils

import (
	"strings"
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")
	SetJWTExpiry(1)

	token, err := GenerateJWTToken("64f1c0ffee0000000000abcd", "user@example.com")
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}

	claims, err := ParseJWTToken(token)
	if err != nil {
		t.Fatalf("ParseJWTToken: %v", err)
	}
	if claims.UserID != "64f1c0ffee0000000000abcd" {
		t.Errorf("UserID = %q", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("secret-one")
	SetJWTExpiry(1)
	token, err := GenerateJWTToken("64f1c0ffee0000000000abcd", "user@example.com")
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}

	SetJWTSecret("secret-two")
	if _, err := ParseJWTToken(token); err == nil {
		t.Error("Expected error for token signed with a different secret")
	}
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")
	if _, err := ParseJWTToken("not.a.token"); err == nil {
		t.Error("Expected error for malformed token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Error("Hash should not equal the plaintext")
	}
	if !CheckPasswordHash("hunter22", hash) {
		t.Error("Correct password rejected")
	}
	if CheckPasswordHash("hunter23", hash) {
		t.Error("Wrong password accepted")
	}
}

func TestGenerateRandomCode(t *testing.T) {
	code := GenerateRandomCode(6)
	if len(code) != 6 {
		t.Fatalf("len = %d, want 6", len(code))
	}
	for _, r := range code {
		if !strings.ContainsRune("0123456789", r) {
			t.Errorf("Code contains non-digit %q", r)
		}
	}
}
