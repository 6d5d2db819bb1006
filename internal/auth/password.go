// Package auth provides password hashing for the identity store.
//
// Sign-up hashes the chosen password with bcrypt and keeps the hash on the
// backing account record. Sign-in verifies against that hash when one is
// present; the seeded demo accounts carry no hash and skip verification,
// which preserves the original demonstration-stub behaviour for them.
//
// bcrypt is deliberately slow and salts automatically — the salt and cost
// are embedded in the output string, so the hash is self-contained and no
// separate salt needs storing.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor. Cost 12 takes roughly a quarter
// second on current hardware — fine for a sign-in, painful for a cracker.
const defaultCost = 12

// ErrPasswordMismatch is returned by Verify when the password is wrong.
var ErrPasswordMismatch = errors.New("auth: password does not match")

// PasswordHasher hashes and verifies passwords. The cost is injectable so
// tests can run at the bcrypt minimum instead of ~250ms per hash.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher at the production cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: defaultCost}
}

// NewPasswordHasherWithCost returns a hasher at a custom cost. Intended for
// tests (bcrypt.MinCost); do not lower the cost in production.
func NewPasswordHasherWithCost(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// Hash hashes a plaintext password. Passwords over 72 bytes are rejected
// rather than silently truncated (a bcrypt quirk).
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify checks a plaintext password against a stored hash. Returns
// ErrPasswordMismatch when they differ. The comparison is constant-time.
func (h *PasswordHasher) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
