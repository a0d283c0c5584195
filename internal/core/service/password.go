package service

import (
	"crypto/rand"

	"golang.org/x/crypto/bcrypt"

	"github.com/gototop/admin-api/internal/core/domain"
)

// PasswordHasher wraps bcrypt with a configured cost factor. Each Hash call
// generates a fresh salt, so equal plaintexts never produce equal hashes.
// The hasher holds no state and is safe for concurrent use.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost. Costs
// outside bcrypt's supported range fall back to the default cost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash transforms a plaintext password into a self-describing bcrypt hash
// (algorithm, cost and salt embedded). Callers are expected to have enforced
// the minimum-length policy before calling.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed hash
// is treated the same as a mismatch so callers can reject credentials
// uniformly.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// ValidatePassword enforces the minimum-length policy for new and changed
// passwords.
func ValidatePassword(plaintext string) error {
	if len(plaintext) < domain.MinPasswordLen {
		return domain.ErrPasswordTooShort
	}
	return nil
}

const passwordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

// GeneratePassword returns a random password of n characters, drawn from an
// alphabet without look-alike characters. Used for admin-triggered resets.
func GeneratePassword(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = passwordAlphabet[int(b)%len(passwordAlphabet)]
	}
	return string(buf)
}
