package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
	"github.com/aussiebroadwan/folio/internal/folio/store"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testUser(email, username string, created time.Time) domain.User {
	return domain.User{
		Email:          email,
		Username:       username,
		DisplayName:    username,
		PasswordDigest: []byte("digest-" + username),
		PasswordSalt:   []byte("salt-" + username),
		Role:           domain.RoleUser,
		Permissions:    domain.DefaultUserPermissions,
		Active:         true,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestBuildDSN(t *testing.T) {
	require.Equal(t,
		":memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		buildDSN(":memory:", true))
	require.Equal(t,
		"folio.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate",
		buildDSN("folio.db", false))
	require.Contains(t, buildDSN("file:x.db?cache=shared", false), "cache=shared&_pragma")
}

func TestUsers_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := testUser("Alice@Example.com", "Alice_1", t0)
	u.Bio = "hello"
	require.NoError(t, s.Users().CreateUser(ctx, u))

	t.Run("by email is case-insensitive", func(t *testing.T) {
		got, err := s.Users().GetUserByEmail(ctx, "alice@example.COM")
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", got.Email)
		require.Equal(t, "Alice_1", got.Username)
		require.Equal(t, "hello", got.Bio)
		require.Equal(t, []byte("digest-Alice_1"), got.PasswordDigest)
		require.Equal(t, []byte("salt-Alice_1"), got.PasswordSalt)
		require.Equal(t, domain.DefaultUserPermissions, got.Permissions)
		require.True(t, got.Active)
		require.True(t, t0.Equal(got.CreatedAt))
		require.Nil(t, got.LastLoginAt)
	})

	t.Run("by username is case-insensitive", func(t *testing.T) {
		got, err := s.Users().GetUserByUsername(ctx, "alice_1")
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := s.Users().GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Users().GetUserByUsername(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := s.Users().CreateUser(ctx, testUser("alice@example.com", "other", t0))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate username differing in case", func(t *testing.T) {
		err := s.Users().CreateUser(ctx, testUser("other@example.com", "ALICE_1", t0))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestUsers_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, s.Users().CreateUser(ctx,
			testUser(name+"@example.com", name, t0.Add(time.Duration(i)*time.Minute))))
	}

	users, err := s.Users().ListUsers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "third", users[0].Username)
	require.Equal(t, "first", users[2].Username)

	users, err = s.Users().ListUsers(ctx, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestUsers_Mutations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Users().CreateUser(ctx, testUser("bob@example.com", "bob", t0)))

	later := t0.Add(time.Hour)

	t.Run("partial profile update", func(t *testing.T) {
		bio := "new bio"
		require.NoError(t, s.Users().UpdateProfile(ctx, "bob@example.com", domain.ProfileUpdate{Bio: &bio}, later))

		got, err := s.Users().GetUserByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		require.Equal(t, "new bio", got.Bio)
		require.Equal(t, "bob", got.DisplayName, "untouched field keeps its value")
		require.True(t, later.Equal(got.UpdatedAt))
	})

	t.Run("profile update can clear a field", func(t *testing.T) {
		empty := ""
		require.NoError(t, s.Users().UpdateProfile(ctx, "bob@example.com", domain.ProfileUpdate{Bio: &empty}, later))
		got, err := s.Users().GetUserByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		require.Empty(t, got.Bio)
	})

	t.Run("password update", func(t *testing.T) {
		require.NoError(t, s.Users().UpdatePassword(ctx, "bob@example.com", []byte("d2"), []byte("s2"), later))
		got, err := s.Users().GetUserByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		require.Equal(t, []byte("d2"), got.PasswordDigest)
		require.Equal(t, []byte("s2"), got.PasswordSalt)
		require.NotNil(t, got.PasswordChangedAt)
		require.True(t, later.Equal(*got.PasswordChangedAt))
	})

	t.Run("touch last login", func(t *testing.T) {
		require.NoError(t, s.Users().TouchLastLogin(ctx, "bob@example.com", later))
		got, err := s.Users().GetUserByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		require.NotNil(t, got.LastLoginAt)
	})

	t.Run("suspend", func(t *testing.T) {
		require.NoError(t, s.Users().SetActive(ctx, "bob@example.com", false, later))
		got, err := s.Users().GetUserByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		require.False(t, got.Active)
	})

	t.Run("counters never go negative", func(t *testing.T) {
		require.NoError(t, s.Users().AdjustFollowCounts(ctx, "bob@example.com", 2, 1))
		require.NoError(t, s.Users().AdjustFollowCounts(ctx, "bob@example.com", -5, -1))
		got, err := s.Users().GetUserByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		require.Zero(t, got.Followers)
		require.Zero(t, got.Following)
	})

	t.Run("missing rows report not found", func(t *testing.T) {
		users := s.Users()
		require.ErrorIs(t, users.UpdatePassword(ctx, "x@example.com", []byte("d"), []byte("s"), later), store.ErrNotFound)
		require.ErrorIs(t, users.TouchLastLogin(ctx, "x@example.com", later), store.ErrNotFound)
		require.ErrorIs(t, users.SetActive(ctx, "x@example.com", true, later), store.ErrNotFound)
		require.ErrorIs(t, users.UpdateProfile(ctx, "x@example.com", domain.ProfileUpdate{}, later), store.ErrNotFound)
		require.ErrorIs(t, users.AdjustFollowCounts(ctx, "x@example.com", 1, 1), store.ErrNotFound)
		require.ErrorIs(t, users.DeleteUser(ctx, "x@example.com"), store.ErrNotFound)
	})
}

func TestUsers_Stats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	owner := testUser("owner@example.com", "owner", t0.Add(-30*24*time.Hour))
	owner.Role = domain.RoleOwner
	require.NoError(t, s.Users().CreateUser(ctx, owner))

	banned := testUser("banned@example.com", "banned", t0)
	banned.Active = false
	require.NoError(t, s.Users().CreateUser(ctx, banned))
	require.NoError(t, s.Users().CreateUser(ctx, testUser("new@example.com", "newbie", t0)))

	stats, err := s.Users().Stats(ctx, t0.Add(-7*24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, domain.UserStats{Total: 3, Active: 2, Suspended: 1, Owners: 1, NewSince: 2}, stats)

	empty, err := s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestFollows(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, name := range []string{"ann", "ben", "cat"} {
		require.NoError(t, s.Users().CreateUser(ctx, testUser(name+"@example.com", name, t0)))
	}

	follow := func(from, to string, at time.Time) error {
		return s.Follows().CreateFollow(ctx, domain.Follow{
			FollowerEmail:  from + "@example.com",
			FollowingEmail: to + "@example.com",
			CreatedAt:      at,
		})
	}

	require.NoError(t, follow("ann", "cat", t0))
	require.NoError(t, follow("ben", "cat", t0.Add(time.Minute)))
	require.NoError(t, follow("cat", "ann", t0.Add(2*time.Minute)))

	t.Run("duplicate edge", func(t *testing.T) {
		require.ErrorIs(t, follow("ann", "cat", t0), store.ErrAlreadyExists)
	})

	t.Run("self edge rejected by schema", func(t *testing.T) {
		require.Error(t, follow("ann", "ann", t0))
	})

	t.Run("unknown target", func(t *testing.T) {
		require.ErrorIs(t, follow("ann", "ghost", t0), store.ErrNotFound)
	})

	t.Run("followers newest first", func(t *testing.T) {
		users, err := s.Follows().ListFollowers(ctx, "cat@example.com", 100)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, "ben", users[0].Username)
		require.Equal(t, "ann", users[1].Username)
	})

	t.Run("following", func(t *testing.T) {
		users, err := s.Follows().ListFollowing(ctx, "cat@example.com", 100)
		require.NoError(t, err)
		require.Len(t, users, 1)
		require.Equal(t, "ann", users[0].Username)
	})

	t.Run("get and list", func(t *testing.T) {
		f, err := s.Follows().GetFollow(ctx, "ann@example.com", "cat@example.com")
		require.NoError(t, err)
		require.True(t, t0.Equal(f.CreatedAt))

		_, err = s.Follows().GetFollow(ctx, "cat@example.com", "ben@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)

		edges, err := s.Follows().ListByUser(ctx, "ann@example.com")
		require.NoError(t, err)
		require.Len(t, edges, 2)

		all, err := s.Follows().ListAll(ctx, 100)
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, "cat@example.com", all[0].FollowerEmail)

		n, err := s.Follows().Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, n)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Follows().DeleteFollow(ctx, "ann@example.com", "cat@example.com"))
		require.ErrorIs(t, s.Follows().DeleteFollow(ctx, "ann@example.com", "cat@example.com"), store.ErrNotFound)
	})

	t.Run("user delete cascades", func(t *testing.T) {
		require.NoError(t, s.Users().DeleteUser(ctx, "cat@example.com"))
		n, err := s.Follows().Count(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("commit", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().CreateUser(ctx, testUser("tx@example.com", "txuser", t0))
		})
		require.NoError(t, err)

		_, err = s.Users().GetUserByEmail(ctx, "tx@example.com")
		require.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().CreateUser(ctx, testUser("rb@example.com", "rbuser", t0)); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.Users().GetUserByEmail(ctx, "rb@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("nested tx refused", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.Error(t, err)
	})
}
