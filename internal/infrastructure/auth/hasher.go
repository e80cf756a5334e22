package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var errPasswordMismatch = errors.New("password verification failed")

// BcryptPasswordHasher hashes staff account passwords with bcrypt.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher clamps out-of-range costs to the bcrypt default.
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports mismatches and malformed stored hashes with the same error
// so login failures stay indistinguishable to the caller.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return errPasswordMismatch
	}
	return nil
}
