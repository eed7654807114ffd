package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by HashPassword when the plain password is empty.
var ErrEmptyPassword = errors.New("empty password provided")

// HashPassword derives a bcrypt digest from the given plain-text password.
//
// The cost parameter selects the bcrypt work factor; values below
// bcrypt.MinCost (including zero) fall back to bcrypt.DefaultCost, so callers
// may pass an unset config value directly.
//
// Returns the digest in the standard bcrypt string encoding, which embeds the
// salt and cost and can later be checked with VerifyPassword.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plain-text password matches the bcrypt
// digest. Any comparison failure, including a malformed digest, yields false.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
