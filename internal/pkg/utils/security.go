package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt hash. Output differs between calls
// for the same input, so equality must go through CheckPasswordHash.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches hash. A malformed hash
// or empty input is a verification failure, never a panic.
func CheckPasswordHash(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
