package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to every password.
// Fixed at 10 to keep hashes compatible across deployments.
const passwordHashCost = 10

// HashPassword derives a salted bcrypt hash from the given plaintext
// password. The salt is generated internally by bcrypt, so two calls with the
// same input produce different hashes.
//
// Returns an error only if bcrypt itself fails (e.g. the password exceeds
// bcrypt's 72-byte limit).
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether plaintext reproduces the stored bcrypt hash.
//
// A wrong password is not an error: it returns (false, nil). A non-nil error
// is returned only when the stored hash is malformed (data corruption), in
// which case the boolean result is meaningless.
func CheckPassword(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("error comparing password hash: %w", err)
}
