package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
	"github.com/aussiebroadwan/folio/internal/folio/store"
	"github.com/aussiebroadwan/folio/pkg/slogx"
)

type FollowService struct {
	Store store.Store

	Now func() time.Time
}

// Follow makes follower follow target. The edge and both counters change in
// one transaction.
func (s *FollowService) Follow(ctx context.Context, follower, target string) error {
	follower = strings.ToLower(strings.TrimSpace(follower))
	target = strings.ToLower(strings.TrimSpace(target))

	if target == "" {
		return invalid("email", "target email is required")
	}
	if follower == target {
		return ErrSelfAction
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByEmail(ctx, target); err != nil {
			return mapUserErr("lookup target", err)
		}

		if _, err := tx.Follows().GetFollow(ctx, follower, target); err == nil {
			return ErrAlreadyFollowing
		} else if !errors.Is(err, store.ErrNotFound) {
			return storageErr("lookup follow", err)
		}

		err := tx.Follows().CreateFollow(ctx, domain.Follow{
			FollowerEmail:  follower,
			FollowingEmail: target,
			CreatedAt:      now().UTC(),
		})
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return ErrAlreadyFollowing
		case errors.Is(err, store.ErrNotFound):
			// The follower's own row vanished mid-request
			return ErrUserNotFound
		case err != nil:
			return storageErr("create follow", err)
		}

		if err := tx.Users().AdjustFollowCounts(ctx, target, 1, 0); err != nil {
			return mapUserErr("bump followers", err)
		}
		if err := tx.Users().AdjustFollowCounts(ctx, follower, 0, 1); err != nil {
			return mapUserErr("bump following", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user followed",
		slog.String("follower", follower),
		slog.String("following", target),
	)
	return nil
}

// Unfollow removes the edge and decrements both counters.
func (s *FollowService) Unfollow(ctx context.Context, follower, target string) error {
	follower = strings.ToLower(strings.TrimSpace(follower))
	target = strings.ToLower(strings.TrimSpace(target))

	if target == "" {
		return invalid("email", "target email is required")
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return removeFollow(ctx, tx, follower, target)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user unfollowed",
		slog.String("follower", follower),
		slog.String("following", target),
	)
	return nil
}

// removeFollow deletes one edge and keeps the counters of both ends in step.
// A counter on a user that no longer exists is skipped.
func removeFollow(ctx context.Context, tx store.Tx, follower, following string) error {
	if err := tx.Follows().DeleteFollow(ctx, follower, following); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFollowing
		}
		return storageErr("delete follow", err)
	}

	if err := tx.Users().AdjustFollowCounts(ctx, following, -1, 0); err != nil && !errors.Is(err, store.ErrNotFound) {
		return storageErr("drop followers", err)
	}
	if err := tx.Users().AdjustFollowCounts(ctx, follower, 0, -1); err != nil && !errors.Is(err, store.ErrNotFound) {
		return storageErr("drop following", err)
	}
	return nil
}

// Followers lists the profiles following email, newest first.
func (s *FollowService) Followers(ctx context.Context, email string, limit int) ([]domain.Profile, error) {
	if err := s.requireUser(ctx, email); err != nil {
		return nil, err
	}
	users, err := s.Store.Follows().ListFollowers(ctx, email, clampLimit(limit))
	if err != nil {
		return nil, storageErr("list followers", err)
	}
	return profiles(users), nil
}

// Following lists the profiles email follows, newest first.
func (s *FollowService) Following(ctx context.Context, email string, limit int) ([]domain.Profile, error) {
	if err := s.requireUser(ctx, email); err != nil {
		return nil, err
	}
	users, err := s.Store.Follows().ListFollowing(ctx, email, clampLimit(limit))
	if err != nil {
		return nil, storageErr("list following", err)
	}
	return profiles(users), nil
}

// IsFollowing reports whether follower follows target.
func (s *FollowService) IsFollowing(ctx context.Context, follower, target string) (bool, error) {
	_, err := s.Store.Follows().GetFollow(ctx, follower, target)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNotFound):
		return false, nil
	default:
		return false, storageErr("lookup follow", err)
	}
}

func (s *FollowService) requireUser(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return invalid("email", "email is required")
	}
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err != nil {
		return mapUserErr("lookup user", err)
	}
	return nil
}
