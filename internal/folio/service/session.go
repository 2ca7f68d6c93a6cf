package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
	"github.com/aussiebroadwan/folio/internal/folio/observability"
	"github.com/aussiebroadwan/folio/internal/folio/store"
	"github.com/aussiebroadwan/folio/pkg/cryptox"
	"github.com/aussiebroadwan/folio/pkg/jwtx"
	"github.com/aussiebroadwan/folio/pkg/lockout"
	"github.com/aussiebroadwan/folio/pkg/slogx"
)

// LoginRequest is the input to SessionService.Login.
type LoginRequest struct {
	// Identifier is an email address, or a username when it has no "@"
	Identifier string
	Password   string
	// ClientIP keys the failed-login lockout
	ClientIP string
}

// LoginResult is a freshly issued session.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

// Session is a verified token resolved against the current user record.
// Role and permissions come from the store, not from the token.
type Session struct {
	User      domain.User
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type SessionService struct {
	Store   store.Store
	Codec   *jwtx.Codec
	Lockout *lockout.Limiter
	Metrics *observability.Metrics

	// Now is the clock; nil means time.Now
	Now func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login authenticates a user and issues a session token.
//
// Username resolution happens before the lockout check and the lockout check
// before password verification. Unknown identities and wrong passwords both
// count as failures and produce the same error. Suspension is only revealed
// to callers who presented the right password.
func (s *SessionService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	l := slogx.FromContext(ctx)

	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" || req.Password == "" {
		return nil, invalid("", "email/username and password are required")
	}

	user, found, err := s.resolve(ctx, identifier)
	if err != nil {
		s.Metrics.RecordLogin(observability.OutcomeStorageFailed)
		return nil, err
	}

	// The attempt is counted before the password is checked, so concurrent
	// guesses cannot all slip under the threshold while PBKDF2 runs.
	res := s.Lockout.Acquire(req.ClientIP)
	if !res.Allowed {
		l.Warn("login blocked by lockout",
			slog.String("client_ip", req.ClientIP),
			slog.Int("retry_after", res.RetryAfter),
		)
		s.Metrics.RecordLogin(observability.OutcomeLockedOut)
		return nil, &TooManyAttemptsError{RetryAfter: res.RetryAfter}
	}

	if !found {
		l.Warn("login failed: unknown identity", slog.String("client_ip", req.ClientIP))
		return nil, s.reject(res)
	}

	if !cryptox.VerifyPassword(req.Password, user.PasswordSalt, user.PasswordDigest) {
		l.Warn("login failed: wrong password",
			slog.String("email", user.Email),
			slog.String("client_ip", req.ClientIP),
		)
		return nil, s.reject(res)
	}

	// Right password: the reservation and earlier failures are released even
	// if the account turns out to be suspended.
	s.Lockout.Clear(req.ClientIP)

	if !user.Active {
		l.Warn("login refused: account suspended", slog.String("email", user.Email))
		s.Metrics.RecordLogin(observability.OutcomeSuspended)
		return nil, ErrAccountSuspended
	}

	now := s.now().UTC()
	if err := s.Store.Users().TouchLastLogin(ctx, user.Email, now); err != nil {
		s.Metrics.RecordLogin(observability.OutcomeStorageFailed)
		return nil, storageErr("touch last login", err)
	}
	user.LastLoginAt = &now

	token, exp, err := s.Codec.Issue(jwtx.NewSessionClaims(user.Email, user.Role, user.Permissions))
	if err != nil {
		return nil, err
	}

	l.Info("login succeeded", slog.String("email", user.Email))
	s.Metrics.RecordLogin(observability.OutcomeSuccess)

	return &LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}

// resolve looks the identifier up as an email or username. A missing user
// is reported through found, not as an error.
func (s *SessionService) resolve(ctx context.Context, identifier string) (domain.User, bool, error) {
	var (
		user domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.Store.Users().GetUserByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = s.Store.Users().GetUserByUsername(ctx, identifier)
	}

	switch {
	case err == nil:
		return user, true, nil
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, false, nil
	default:
		return domain.User{}, false, storageErr("lookup user", err)
	}
}

// reject reports a failed attempt whose reservation already counts it.
func (s *SessionService) reject(res lockout.Result) error {
	s.Metrics.RecordLogin(observability.OutcomeInvalid)
	return &InvalidCredentialsError{AttemptsRemaining: res.Remaining}
}

// ChangePassword replaces the password of email after checking the current
// one. A fresh salt is drawn. Tokens issued earlier stay valid until they
// expire.
func (s *SessionService) ChangePassword(ctx context.Context, email, current, next string) error {
	l := slogx.FromContext(ctx)

	if current == "" || next == "" {
		return invalid("", "current and new password are required")
	}
	if err := cryptox.ValidatePassword(next); err != nil {
		return invalid("newPassword", err.Error())
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return storageErr("lookup user", err)
	}

	if !cryptox.VerifyPassword(current, user.PasswordSalt, user.PasswordDigest) {
		l.Warn("password change rejected: wrong current password", slog.String("email", user.Email))
		return ErrCurrentPasswordIncorrect
	}

	digest, salt, err := cryptox.DerivePassword(next)
	if err != nil {
		return err
	}

	if err := s.Store.Users().UpdatePassword(ctx, user.Email, digest, salt, s.now().UTC()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return storageErr("update password", err)
	}

	l.Info("password changed", slog.String("email", user.Email))
	return nil
}

// VerifySession decodes token and re-reads the user it names. A token for a
// deleted account is ErrUnauthenticated; a suspended account is
// ErrAccountSuspended.
func (s *SessionService) VerifySession(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := s.Codec.Verify(token)
	if err != nil {
		slogx.FromContext(ctx).Debug("session token rejected", slog.String("reason", err.Error()))
		return nil, ErrUnauthenticated
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, storageErr("lookup user", err)
	}

	if !user.Active {
		return nil, ErrAccountSuspended
	}

	return &Session{
		User:      user,
		IssuedAt:  claims.IssuedAtTime(),
		ExpiresAt: claims.ExpiresAtTime(),
	}, nil
}

// IssueFor signs a session token for an already-authenticated user, used by
// registration to log the new account straight in.
func (s *SessionService) IssueFor(user domain.User) (*LoginResult, error) {
	token, exp, err := s.Codec.Issue(jwtx.NewSessionClaims(user.Email, user.Role, user.Permissions))
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}
