package cryptox

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

// Configuration for PBKDF2-HMAC-SHA512 hashing.
const (
	iterations = 100_000 // Iteration count
	keyLength  = 64      // Length of the derived digest (512 bits)
	saltLength = 32      // Length of the salt

	// MinPasswordLength is the shortest password accepted on set/change.
	MinPasswordLength = 8
)

// ErrPasswordTooShort is returned by ValidatePassword.
var ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)

// NewSalt returns a fresh random salt. A new salt is generated on every
// password set or change and never reused.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// HashPassword derives the digest for password under salt. It is a pure
// function: the same inputs always produce the same digest.
func HashPassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha512.New)
}

// VerifyPassword recomputes the digest and compares it in constant time.
func VerifyPassword(password string, salt, expected []byte) bool {
	if len(salt) == 0 || len(expected) == 0 {
		return false
	}
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(computed, expected) == 1
}

// ValidatePassword checks the minimum length rule, counted in characters.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// DerivePassword is a convenience for the common "set a password" flow:
// validate, draw a new salt and hash.
func DerivePassword(password string) (digest, salt []byte, err error) {
	if err := ValidatePassword(password); err != nil {
		return nil, nil, err
	}
	salt, err = NewSalt()
	if err != nil {
		return nil, nil, err
	}
	return HashPassword(password, salt), salt, nil
}
