package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	otp, err := GenerateOTP()
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	assert.Regexp(t, `^\d{6}$`, otp)
}

func TestOTPStoreVerify(t *testing.T) {
	store := NewOTPStore(10 * time.Minute)
	store.Put("ada@example.com", PendingSignup{Code: "123456", Username: "ada", Email: "ada@example.com"})

	// Wrong code is rejected and does not consume the entry
	_, ok := store.Verify("ada@example.com", "000000")
	assert.False(t, ok)

	pending, ok := store.Verify("ada@example.com", "123456")
	require.True(t, ok)
	assert.Equal(t, "ada", pending.Username)

	// Consumed: the same code cannot be replayed
	_, ok = store.Verify("ada@example.com", "123456")
	assert.False(t, ok)
}

func TestOTPStoreUnknownEmail(t *testing.T) {
	store := NewOTPStore(10 * time.Minute)
	_, ok := store.Verify("nobody@example.com", "123456")
	assert.False(t, ok)
}

func TestOTPStoreExpiry(t *testing.T) {
	store := NewOTPStore(10 * time.Minute)
	current := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Put("ada@example.com", PendingSignup{Code: "123456"})

	current = current.Add(11 * time.Minute)
	_, ok := store.Verify("ada@example.com", "123456")
	assert.False(t, ok, "expired codes must be rejected")
}

func TestOTPStoreReplacement(t *testing.T) {
	store := NewOTPStore(10 * time.Minute)
	store.Put("ada@example.com", PendingSignup{Code: "111111"})
	store.Put("ada@example.com", PendingSignup{Code: "222222"})

	_, ok := store.Verify("ada@example.com", "111111")
	assert.False(t, ok, "a new request invalidates the previous code")

	_, ok = store.Verify("ada@example.com", "222222")
	assert.True(t, ok)
}
