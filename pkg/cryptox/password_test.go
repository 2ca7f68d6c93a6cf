package cryptox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salt, err := NewSalt()
			require.NoError(t, err)

			digest := HashPassword(tt.password, salt)
			require.Len(t, digest, keyLength, "digest should be 512 bits")

			// Deterministic for the same inputs
			require.Equal(t, digest, HashPassword(tt.password, salt))
			require.True(t, VerifyPassword(tt.password, salt, digest))
		})
	}
}

func TestNewSalt_Unique(t *testing.T) {
	const count = 50
	seen := make(map[string]bool, count)

	for range count {
		salt, err := NewSalt()
		require.NoError(t, err)
		require.Len(t, salt, saltLength)
		require.NotContains(t, seen, string(salt), "duplicate salt generated")
		seen[string(salt)] = true
	}
}

func TestHashPassword_SaltChangesDigest(t *testing.T) {
	password := "samepassword"

	salt1, err := NewSalt()
	require.NoError(t, err)
	salt2, err := NewSalt()
	require.NoError(t, err)

	d1 := HashPassword(password, salt1)
	d2 := HashPassword(password, salt2)
	require.NotEqual(t, d1, d2, "digests should differ due to unique salts")

	require.True(t, VerifyPassword(password, salt1, d1))
	require.True(t, VerifyPassword(password, salt2, d2))
	require.False(t, VerifyPassword(password, salt1, d2))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	digest := HashPassword("correct-password", salt)

	tests := []struct {
		name          string
		wrongPassword string
	}{
		{"completely wrong", "wrong-password"},
		{"case difference", "Correct-Password"},
		{"extra space", "correct-password "},
		{"empty password", ""},
		{"similar password", "correct-passwor"},
		{"very long", strings.Repeat("x", 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, VerifyPassword(tt.wrongPassword, salt, digest))
		})
	}
}

func TestVerifyPassword_SingleBitMutation(t *testing.T) {
	password := "bit-flip-password"
	salt, err := NewSalt()
	require.NoError(t, err)
	digest := HashPassword(password, salt)

	t.Run("password bits", func(t *testing.T) {
		raw := []byte(password)
		for i := range raw {
			mutated := bytes.Clone(raw)
			mutated[i] ^= 0x01
			require.False(t, VerifyPassword(string(mutated), salt, digest), "byte %d", i)
		}
	})

	t.Run("salt bits", func(t *testing.T) {
		// Every byte is a lot of PBKDF2 rounds, a spread of positions is enough.
		for _, i := range []int{0, 7, 15, 16, 31} {
			mutated := bytes.Clone(salt)
			mutated[i] ^= 0x80
			require.False(t, VerifyPassword(password, mutated, digest), "byte %d", i)
		}
	})
}

func TestVerifyPassword_MissingMaterial(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	digest := HashPassword("password123", salt)

	require.False(t, VerifyPassword("password123", nil, digest))
	require.False(t, VerifyPassword("password123", salt, nil))
	require.False(t, VerifyPassword("password123", salt, digest[:10]))
}

func TestValidatePassword(t *testing.T) {
	require.Error(t, ValidatePassword(""))
	require.ErrorIs(t, ValidatePassword("short"), ErrPasswordTooShort)
	require.ErrorIs(t, ValidatePassword("1234567"), ErrPasswordTooShort)
	require.NoError(t, ValidatePassword("12345678"))

	// Multi-byte characters count once each
	require.ErrorIs(t, ValidatePassword("密码密码密码密"), ErrPasswordTooShort)
	require.NoError(t, ValidatePassword("密码密码密码密码"))
}

func TestDerivePassword(t *testing.T) {
	digest, salt, err := DerivePassword("MySecurePassword123!")
	require.NoError(t, err)
	require.Len(t, salt, saltLength)
	require.True(t, VerifyPassword("MySecurePassword123!", salt, digest))

	_, _, err = DerivePassword("short")
	require.ErrorIs(t, err, ErrPasswordTooShort)
}
