package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
	"github.com/aussiebroadwan/folio/internal/folio/observability"
	"github.com/aussiebroadwan/folio/internal/folio/store"
	"github.com/aussiebroadwan/folio/pkg/cryptox"
	"github.com/aussiebroadwan/folio/pkg/slogx"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
)

// RegisterRequest is a self-service sign-up.
type RegisterRequest struct {
	Email       string
	Password    string
	DisplayName string
	Username    string
}

type RegistrationService struct {
	Store    store.Store
	Sessions *SessionService
	Metrics  *observability.Metrics

	Now func() time.Time
}

// Register creates a USER account and logs it straight in.
func (s *RegistrationService) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	l := slogx.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	displayName := strings.TrimSpace(req.DisplayName)

	if err := validateRegistration(email, req.Password, displayName, username); err != nil {
		return nil, err
	}

	digest, salt, err := cryptox.DerivePassword(req.Password)
	if err != nil {
		return nil, invalid("password", err.Error())
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	at := now().UTC()

	user := domain.User{
		Email:          email,
		Username:       username,
		DisplayName:    displayName,
		PasswordDigest: digest,
		PasswordSalt:   salt,
		Role:           domain.RoleUser,
		Permissions:    domain.DefaultUserPermissions,
		Active:         true,
		CreatedAt:      at,
		UpdatedAt:      at,
	}

	if err := createUser(ctx, s.Store, user); err != nil {
		if !errors.Is(err, ErrStorageUnavailable) {
			l.Info("registration rejected", slog.String("reason", err.Error()))
		}
		return nil, err
	}

	l.Info("user registered", slog.String("email", email), slog.String("username", username))
	s.Metrics.RecordRegistration()

	return s.Sessions.IssueFor(user)
}

// createUser inserts user after checking both unique keys, so the caller
// learns which one clashed.
func createUser(ctx context.Context, st store.Store, user domain.User) error {
	return st.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByUsername(ctx, user.Username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return storageErr("lookup username", err)
		}

		if _, err := tx.Users().GetUserByEmail(ctx, user.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return storageErr("lookup email", err)
		}

		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return storageErr("create user", err)
		}
		return nil
	})
}

func validateRegistration(email, password, displayName, username string) error {
	if email == "" || password == "" || displayName == "" || username == "" {
		return invalid("", "email, password, displayName and username are required")
	}
	if !emailPattern.MatchString(email) {
		return invalid("email", "invalid email format")
	}
	if !usernamePattern.MatchString(username) {
		return invalid("username", "username must be 3-20 characters and contain only letters, numbers and underscores")
	}
	if err := cryptox.ValidatePassword(password); err != nil {
		return invalid("password", err.Error())
	}
	return nil
}
