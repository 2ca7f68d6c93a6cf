package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
	"github.com/aussiebroadwan/folio/internal/folio/store"
	"github.com/aussiebroadwan/folio/pkg/cryptox"
	"github.com/aussiebroadwan/folio/pkg/slogx"
)

var ErrBootstrapIncomplete = errors.New("owner seed requires email and password")

// OwnerSeed describes the owner account created at startup.
type OwnerSeed struct {
	Email       string
	Username    string
	DisplayName string
	Password    string
}

type BootstrapService struct {
	Store store.Store

	Now func() time.Time
}

// EnsureOwner creates the seeded OWNER account if no account with that email
// exists yet. It reports whether an account was created. An existing account
// is left untouched, including its password.
func (s *BootstrapService) EnsureOwner(ctx context.Context, seed OwnerSeed) (bool, error) {
	l := slogx.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(seed.Email))
	if email == "" || seed.Password == "" {
		return false, ErrBootstrapIncomplete
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		l.Debug("owner account already present", slog.String("email", email))
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, storageErr("lookup owner", err)
	}

	username := strings.TrimSpace(seed.Username)
	if username == "" {
		username = "owner"
	}
	displayName := strings.TrimSpace(seed.DisplayName)
	if displayName == "" {
		displayName = username
	}

	if !emailPattern.MatchString(email) {
		return false, invalid("email", "invalid email format")
	}
	if !usernamePattern.MatchString(username) {
		return false, invalid("username", "username must be 3-20 characters and contain only letters, numbers and underscores")
	}

	digest, salt, err := cryptox.DerivePassword(seed.Password)
	if err != nil {
		return false, invalid("password", err.Error())
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	at := now().UTC()

	owner := domain.User{
		Email:          email,
		Username:       username,
		DisplayName:    displayName,
		PasswordDigest: digest,
		PasswordSalt:   salt,
		Role:           domain.RoleOwner,
		Permissions:    []string{domain.PermAll},
		Active:         true,
		CreatedAt:      at,
		UpdatedAt:      at,
	}

	if err := createUser(ctx, s.Store, owner); err != nil {
		l.Error("failed to create owner account", slog.String("email", email), slog.Any("error", err))
		return false, err
	}

	l.Info("owner account created", slog.String("email", email), slog.String("username", username))
	return true, nil
}
