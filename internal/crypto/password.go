// Package crypto implements server-side password hashing and verification.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords with bcrypt at a fixed work factor.
// The zero value is not usable; construct with NewHasher.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. The caller is
// expected to have validated the cost (config enforces a minimum of 10).
func NewHasher(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// HashPassword returns the bcrypt digest of password. Hashing happens exactly
// once per password write; stored digests are never re-hashed on reads.
func (h *Hasher) HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether password matches the stored bcrypt digest.
// The comparison is delegated to bcrypt itself; plaintext or digest strings
// are never compared directly.
func (h *Hasher) VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
