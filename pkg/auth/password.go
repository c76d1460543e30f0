// Package auth provides password hashing and JWT token handling.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost 10, matching what existing password hashes were created with.
const hashCost = 10

// HashPassword returns the bcrypt hash of a plain text password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches hash. Returns nil on
// match.
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
