package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
	"github.com/aussiebroadwan/folio/internal/folio/store"
)

// Listing limits.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// Profile field limits.
const (
	maxDisplayNameLen = 50
	maxBioLen         = 500
	maxPhotoURLLen    = 2048
)

type ProfileService struct {
	Store store.Store

	Now func() time.Time
}

// Get returns the profile for an email, or a username when identifier has
// no "@".
func (s *ProfileService) Get(ctx context.Context, identifier string) (domain.Profile, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return domain.Profile{}, invalid("identifier", "email or username is required")
	}

	var (
		user domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.Store.Users().GetUserByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = s.Store.Users().GetUserByUsername(ctx, identifier)
	}
	if err != nil {
		return domain.Profile{}, mapUserErr("lookup user", err)
	}

	return user.Profile(), nil
}

// List returns up to limit profiles, newest first. Non-positive limits use
// DefaultListLimit, larger ones are capped at MaxListLimit.
func (s *ProfileService) List(ctx context.Context, limit int) ([]domain.Profile, error) {
	users, err := s.Store.Users().ListUsers(ctx, clampLimit(limit))
	if err != nil {
		return nil, storageErr("list users", err)
	}
	return profiles(users), nil
}

// Update applies the provided fields to the profile of email.
func (s *ProfileService) Update(ctx context.Context, email string, p domain.ProfileUpdate) (domain.Profile, error) {
	if p.Empty() {
		return domain.Profile{}, invalid("", "no profile fields provided")
	}

	p.DisplayName = trimmed(p.DisplayName)
	if p.DisplayName != nil {
		if *p.DisplayName == "" {
			return domain.Profile{}, invalid("displayName", "display name cannot be empty")
		}
		if utf8.RuneCountInString(*p.DisplayName) > maxDisplayNameLen {
			return domain.Profile{}, invalid("displayName", "display name is too long")
		}
	}
	if p.Bio != nil && utf8.RuneCountInString(*p.Bio) > maxBioLen {
		return domain.Profile{}, invalid("bio", "bio is too long")
	}
	p.PhotoURL = trimmed(p.PhotoURL)
	if p.PhotoURL != nil && len(*p.PhotoURL) > maxPhotoURLLen {
		return domain.Profile{}, invalid("photoURL", "photo URL is too long")
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	if err := s.Store.Users().UpdateProfile(ctx, email, p, now().UTC()); err != nil {
		return domain.Profile{}, mapUserErr("update profile", err)
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		return domain.Profile{}, mapUserErr("lookup user", err)
	}
	return user.Profile(), nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

func profiles(users []domain.User) []domain.Profile {
	out := make([]domain.Profile, 0, len(users))
	for _, u := range users {
		out = append(out, u.Profile())
	}
	return out
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// mapUserErr turns a missing user into ErrUserNotFound and anything else into
// a storage failure.
func mapUserErr(op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return storageErr(op, err)
}
