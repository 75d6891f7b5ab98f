// utils/otp.go
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// GenerateOTP returns a random 6-digit verification code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// PendingSignup holds the signup payload waiting for OTP verification.
type PendingSignup struct {
	Code      string
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
}

// OTPStore keeps pending signups in memory until verified or expired.
// Codes are consumed on successful verification.
type OTPStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	pending map[string]PendingSignup
}

func NewOTPStore(ttl time.Duration) *OTPStore {
	return &OTPStore{
		ttl:     ttl,
		now:     time.Now,
		pending: make(map[string]PendingSignup),
	}
}

// Put stores (or replaces) the pending signup for an email.
func (s *OTPStore) Put(email string, p PendingSignup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.CreatedAt = s.now()
	s.pending[email] = p
}

// Verify checks the code for an email. On success the entry is removed so a
// code cannot be replayed.
func (s *OTPStore) Verify(email, code string) (PendingSignup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[email]
	if !ok {
		return PendingSignup{}, false
	}
	if s.now().Sub(p.CreatedAt) > s.ttl {
		delete(s.pending, email)
		return PendingSignup{}, false
	}
	if p.Code != code {
		return PendingSignup{}, false
	}
	delete(s.pending, email)
	return p, true
}
