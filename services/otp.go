package services

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrOTPNotFound = errors.New("otp not found")
	ErrOTPExpired  = errors.New("otp expired")
	ErrOTPMismatch = errors.New("otp mismatch")
)

type otpEntry struct {
	code      string
	expiresAt time.Time
}

// OTPStore holds one-time codes keyed by email with TTL eviction. It is
// created in main and handed to the auth controllers instead of living as
// process-global state, so it can be swapped out for a shared store when
// running more than one instance.
type OTPStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]otpEntry
	now     func() time.Time
}

// NewOTPStore returns a store whose codes expire after ttl
func NewOTPStore(ttl time.Duration) *OTPStore {
	return &OTPStore{
		ttl:     ttl,
		entries: make(map[string]otpEntry),
		now:     time.Now,
	}
}

// Put stores a code for the email, replacing any previous one, and evicts
// expired entries while it holds the lock.
func (s *OTPStore) Put(email, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}
	s.entries[email] = otpEntry{code: code, expiresAt: now.Add(s.ttl)}
}

// Verify checks the code for the email and consumes it on success.
// Expired codes are removed and reported as expired.
func (s *OTPStore) Verify(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[email]
	if !ok {
		return ErrOTPNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, email)
		return ErrOTPExpired
	}
	if entry.code != code {
		return ErrOTPMismatch
	}
	delete(s.entries, email)
	return nil
}

// Delete drops any stored code for the email
func (s *OTPStore) Delete(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
}
