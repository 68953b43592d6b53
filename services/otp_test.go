package services

import (
	"errors"
	"testing"
	"time"
)

func TestOTPVerifyConsumesCode(t *testing.T) {
	store := NewOTPStore(10 * time.Minute)
	store.Put("a@example.com", "123456")

	if err := store.Verify("a@example.com", "123456"); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	// A second verification must fail: the code is single-use.
	if err := store.Verify("a@example.com", "123456"); !errors.Is(err, ErrOTPNotFound) {
		t.Errorf("Expected ErrOTPNotFound after consumption, got %v", err)
	}
}

func TestOTPMismatchKeepsCode(t *testing.T) {
	store := NewOTPStore(10 * time.Minute)
	store.Put("a@example.com", "123456")

	if err := store.Verify("a@example.com", "000000"); !errors.Is(err, ErrOTPMismatch) {
		t.Fatalf("Expected ErrOTPMismatch, got %v", err)
	}
	// Wrong guesses do not burn the real code.
	if err := store.Verify("a@example.com", "123456"); err != nil {
		t.Errorf("Correct code should still verify after a mismatch: %v", err)
	}
}

func TestOTPExpiry(t *testing.T) {
	store := NewOTPStore(10 * time.Minute)
	current := time.Now()
	store.now = func() time.Time { return current }

	store.Put("a@example.com", "123456")
	current = current.Add(11 * time.Minute)

	if err := store.Verify("a@example.com", "123456"); !errors.Is(err, ErrOTPExpired) {
		t.Errorf("Expected ErrOTPExpired, got %v", err)
	}
	// The expired entry is gone entirely now.
	if err := store.Verify("a@example.com", "123456"); !errors.Is(err, ErrOTPNotFound) {
		t.Errorf("Expected ErrOTPNotFound after expiry eviction, got %v", err)
	}
}

func TestOTPPutReplacesAndEvicts(t *testing.T) {
	store := NewOTPStore(10 * time.Minute)
	current := time.Now()
	store.now = func() time.Time { return current }

	store.Put("old@example.com", "111111")
	store.Put("a@example.com", "123456")
	store.Put("a@example.com", "654321")

	if err := store.Verify("a@example.com", "123456"); !errors.Is(err, ErrOTPMismatch) {
		t.Errorf("Old code should be replaced, got %v", err)
	}

	// Expired entries are swept on Put.
	current = current.Add(11 * time.Minute)
	store.Put("b@example.com", "222222")
	if err := store.Verify("old@example.com", "111111"); !errors.Is(err, ErrOTPNotFound) {
		t.Errorf("Expected eviction of expired entry, got %v", err)
	}
}

func TestOTPUnknownEmail(t *testing.T) {
	store := NewOTPStore(time.Minute)
	if err := store.Verify("nobody@example.com", "123456"); !errors.Is(err, ErrOTPNotFound) {
		t.Errorf("Expected ErrOTPNotFound, got %v", err)
	}
}
