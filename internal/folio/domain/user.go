package domain

import (
	"slices"
	"time"
)

// Roles a user can hold.
const (
	RoleOwner = "OWNER"
	RoleUser  = "USER"
)

// Permissions granted to accounts.
const (
	PermAll          = "*"
	PermProfileWrite = "profile:write"
	PermFollowWrite  = "follow:write"
)

// DefaultUserPermissions are granted on self-registration.
var DefaultUserPermissions = []string{PermProfileWrite, PermFollowWrite}

type User struct {
	Email             string // Canonical identity, lowercased
	Username          string // Unique, case-insensitive
	DisplayName       string
	Bio               string
	PhotoURL          string
	PasswordDigest    []byte // PBKDF2-SHA512 of (password, salt)
	PasswordSalt      []byte
	Role              string
	Permissions       []string // Parsed from space-delimited storage
	Active            bool     // False when suspended by an owner
	Followers         int
	Following         int
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LastLoginAt       *time.Time
	PasswordChangedAt *time.Time
}

// IsOwner reports whether the user holds the OWNER role.
func (u User) IsOwner() bool { return u.Role == RoleOwner }

// HasPermission reports whether the user has perm directly or via "*".
func (u User) HasPermission(perm string) bool {
	return slices.Contains(u.Permissions, PermAll) || slices.Contains(u.Permissions, perm)
}

// Profile is the public projection of a user. It never carries credential
// material or permissions.
type Profile struct {
	Email       string
	Username    string
	DisplayName string
	Bio         string
	PhotoURL    string
	Role        string
	Active      bool
	Followers   int
	Following   int
	CreatedAt   time.Time
	LastLoginAt *time.Time
}

// Profile projects the user onto its public fields.
func (u User) Profile() Profile {
	return Profile{
		Email:       u.Email,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		PhotoURL:    u.PhotoURL,
		Role:        u.Role,
		Active:      u.Active,
		Followers:   u.Followers,
		Following:   u.Following,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

// ProfileUpdate carries the optional fields of a profile edit. Nil fields
// are left unchanged.
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	PhotoURL    *string
}

// Empty reports whether the update changes nothing.
func (p ProfileUpdate) Empty() bool {
	return p.DisplayName == nil && p.Bio == nil && p.PhotoURL == nil
}

// UserStats are the aggregate counters shown on the admin dashboard.
type UserStats struct {
	Total     int
	Active    int
	Suspended int
	Owners    int
	NewSince  int // Created at or after the requested cutoff
}
