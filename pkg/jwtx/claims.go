package jwtx

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is the fixed lifetime of a session token.
const SessionTTL = 24 * time.Hour

// Claims are the session-token claims. Only Email is trusted after issuance;
// role and permissions are a snapshot for clients and must be re-read from the
// user store before any authorization decision.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the canonical identity of the account
	Email string `json:"email"`

	// Role at the time of issuance, "OWNER" or "USER"
	Role string `json:"role,omitempty"`

	// Permissions at the time of issuance, "profile:write follow:write"
	Permissions []string `json:"permissions,omitempty"`
}

// NewSessionClaims builds the claims for an identity. Timestamps are stamped
// by Codec.Issue.
func NewSessionClaims(email, role string, permissions []string) Claims {
	return Claims{
		Email:       email,
		Role:        role,
		Permissions: slices.Clone(permissions),
	}
}

// HasPermission reports whether the snapshot includes perm or the "*" wildcard.
func (c *Claims) HasPermission(perm string) bool {
	return slices.Contains(c.Permissions, "*") || slices.Contains(c.Permissions, perm)
}

// IssuedAtTime returns iat or the zero time.
func (c *Claims) IssuedAtTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// ExpiresAtTime returns exp or the zero time.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// validate checks the fields the codec requires beyond what the parser does.
func (c *Claims) validate() error {
	if c.Email == "" {
		return ErrInvalidClaims
	}
	if c.ExpiresAt == nil || c.IssuedAt == nil {
		return ErrInvalidClaims
	}
	return nil
}
