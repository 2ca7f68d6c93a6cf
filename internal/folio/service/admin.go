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

// newUserWindow is how far back Analytics counts new sign-ups.
const newUserWindow = 7 * 24 * time.Hour

// Analytics is the admin dashboard summary.
type Analytics struct {
	TotalUsers     int
	ActiveUsers    int
	SuspendedUsers int
	Owners         int
	NewUsers       int // Registered in the last 7 days
	TotalFollows   int
}

// AdminService holds the OWNER-only operations. Every method takes the
// acting user as read fresh from the store and refuses non-owners.
type AdminService struct {
	Store store.Store

	Now func() time.Time
}

func (s *AdminService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func requireOwner(actor domain.User) error {
	if !actor.Active || !actor.IsOwner() {
		return ErrForbidden
	}
	return nil
}

// ListUsers returns up to limit profiles, newest first.
func (s *AdminService) ListUsers(ctx context.Context, actor domain.User, limit int) ([]domain.Profile, error) {
	if err := requireOwner(actor); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = MaxListLimit
	}
	users, err := s.Store.Users().ListUsers(ctx, clampLimit(limit))
	if err != nil {
		return nil, storageErr("list users", err)
	}
	return profiles(users), nil
}

// DeleteUser removes an account. The counters on the far side of each of
// its follow edges are adjusted in the same transaction before the edges
// cascade away.
func (s *AdminService) DeleteUser(ctx context.Context, actor domain.User, email string) error {
	if err := requireOwner(actor); err != nil {
		return err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return invalid("email", "email is required")
	}
	if email == actor.Email {
		return ErrSelfAction
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByEmail(ctx, email); err != nil {
			return mapUserErr("lookup user", err)
		}

		edges, err := tx.Follows().ListByUser(ctx, email)
		if err != nil {
			return storageErr("list follows", err)
		}
		for _, e := range edges {
			if e.FollowerEmail == email {
				err = tx.Users().AdjustFollowCounts(ctx, e.FollowingEmail, -1, 0)
			} else {
				err = tx.Users().AdjustFollowCounts(ctx, e.FollowerEmail, 0, -1)
			}
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return storageErr("adjust counters", err)
			}
		}

		if err := tx.Users().DeleteUser(ctx, email); err != nil {
			return mapUserErr("delete user", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user deleted by owner",
		slog.String("actor", actor.Email),
		slog.String("email", email),
	)
	return nil
}

// SetActive suspends (active=false) or reinstates an account. Suspension
// takes effect on the next request because sessions re-read the record.
func (s *AdminService) SetActive(ctx context.Context, actor domain.User, email string, active bool) error {
	if err := requireOwner(actor); err != nil {
		return err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return invalid("email", "email is required")
	}
	if email == actor.Email {
		return ErrSelfAction
	}

	if err := s.Store.Users().SetActive(ctx, email, active, s.now().UTC()); err != nil {
		return mapUserErr("set active", err)
	}

	slogx.FromContext(ctx).Info("user active flag changed",
		slog.String("actor", actor.Email),
		slog.String("email", email),
		slog.Bool("active", active),
	)
	return nil
}

// ResetPassword sets a new password for email without knowing the old one.
func (s *AdminService) ResetPassword(ctx context.Context, actor domain.User, email, password string) error {
	if err := requireOwner(actor); err != nil {
		return err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return invalid("email", "email is required")
	}

	digest, salt, err := cryptox.DerivePassword(password)
	if err != nil {
		return invalid("newPassword", err.Error())
	}

	if err := s.Store.Users().UpdatePassword(ctx, email, digest, salt, s.now().UTC()); err != nil {
		return mapUserErr("reset password", err)
	}

	slogx.FromContext(ctx).Info("password reset by owner",
		slog.String("actor", actor.Email),
		slog.String("email", email),
	)
	return nil
}

// Analytics summarises the user base.
func (s *AdminService) Analytics(ctx context.Context, actor domain.User) (Analytics, error) {
	if err := requireOwner(actor); err != nil {
		return Analytics{}, err
	}

	stats, err := s.Store.Users().Stats(ctx, s.now().UTC().Add(-newUserWindow))
	if err != nil {
		return Analytics{}, storageErr("user stats", err)
	}
	follows, err := s.Store.Follows().Count(ctx)
	if err != nil {
		return Analytics{}, storageErr("count follows", err)
	}

	return Analytics{
		TotalUsers:     stats.Total,
		ActiveUsers:    stats.Active,
		SuspendedUsers: stats.Suspended,
		Owners:         stats.Owners,
		NewUsers:       stats.NewSince,
		TotalFollows:   follows,
	}, nil
}

// ListFollows returns up to limit edges, newest first.
func (s *AdminService) ListFollows(ctx context.Context, actor domain.User, limit int) ([]domain.Follow, error) {
	if err := requireOwner(actor); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = MaxListLimit
	}
	edges, err := s.Store.Follows().ListAll(ctx, clampLimit(limit))
	if err != nil {
		return nil, storageErr("list follows", err)
	}
	return edges, nil
}

// DeleteFollow removes any edge, fixing both counters.
func (s *AdminService) DeleteFollow(ctx context.Context, actor domain.User, follower, following string) error {
	if err := requireOwner(actor); err != nil {
		return err
	}
	follower = strings.ToLower(strings.TrimSpace(follower))
	following = strings.ToLower(strings.TrimSpace(following))
	if follower == "" || following == "" {
		return invalid("", "follower and following are required")
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return removeFollow(ctx, tx, follower, following)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("follow removed by owner",
		slog.String("actor", actor.Email),
		slog.String("follower", follower),
		slog.String("following", following),
	)
	return nil
}
