package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.register.Register(ctx, RegisterRequest{
		Email:       "  New.User@Example.com ",
		Password:    "long-enough-pw",
		DisplayName: " New User ",
		Username:    "new_user",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, "new.user@example.com", res.User.Email)
	require.Equal(t, domain.RoleUser, res.User.Role)

	claims, err := f.codec.Verify(res.Token)
	require.NoError(t, err)
	require.Equal(t, "new.user@example.com", claims.Email)

	stored := f.user(t, "new.user@example.com")
	require.Equal(t, "New User", stored.DisplayName)
	require.True(t, stored.Active)
	require.Len(t, stored.PasswordSalt, 32)
	require.Len(t, stored.PasswordDigest, 64)
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Registrations))

	_, err = f.sessions.Login(ctx, LoginRequest{Identifier: "new_user", Password: "long-enough-pw", ClientIP: clientIP})
	require.NoError(t, err)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)

	valid := RegisterRequest{Email: "a@example.com", Password: "password1", DisplayName: "A", Username: "abc"}

	cases := map[string]func(r *RegisterRequest){
		"missing email":        func(r *RegisterRequest) { r.Email = "" },
		"missing display name": func(r *RegisterRequest) { r.DisplayName = "  " },
		"bad email":            func(r *RegisterRequest) { r.Email = "not-an-email" },
		"short username":       func(r *RegisterRequest) { r.Username = "ab" },
		"long username":        func(r *RegisterRequest) { r.Username = "abcdefghijklmnopqrstu" },
		"username symbols":     func(r *RegisterRequest) { r.Username = "bad-name" },
		"short password":       func(r *RegisterRequest) { r.Password = "1234567" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := valid
			mutate(&req)
			_, err := f.register.Register(context.Background(), req)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}

	empty, err := f.store.Users().IsEmpty(context.Background())
	require.NoError(t, err)
	require.True(t, empty)
}

func TestRegister_Conflicts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, "taken@example.com", "taken", goodPass, domain.RoleUser)

	t.Run("username, case-insensitive", func(t *testing.T) {
		_, err := f.register.Register(ctx, RegisterRequest{
			Email: "fresh@example.com", Password: goodPass, DisplayName: "F", Username: "TAKEN",
		})
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("email, case-insensitive", func(t *testing.T) {
		_, err := f.register.Register(ctx, RegisterRequest{
			Email: "Taken@Example.com", Password: goodPass, DisplayName: "F", Username: "fresh",
		})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("username wins when both clash", func(t *testing.T) {
		_, err := f.register.Register(ctx, RegisterRequest{
			Email: "taken@example.com", Password: goodPass, DisplayName: "F", Username: "taken",
		})
		require.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestBootstrap_EnsureOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	boot := &BootstrapService{Store: f.store, Now: f.clock.Now}

	t.Run("incomplete seed", func(t *testing.T) {
		_, err := boot.EnsureOwner(ctx, OwnerSeed{Email: "root@example.com"})
		require.ErrorIs(t, err, ErrBootstrapIncomplete)
	})

	t.Run("creates owner with defaults", func(t *testing.T) {
		created, err := boot.EnsureOwner(ctx, OwnerSeed{Email: "Root@Example.com", Password: "owner-password"})
		require.NoError(t, err)
		require.True(t, created)

		owner := f.user(t, "root@example.com")
		require.Equal(t, domain.RoleOwner, owner.Role)
		require.Equal(t, "owner", owner.Username)
		require.Equal(t, "owner", owner.DisplayName)
		require.Equal(t, []string{domain.PermAll}, owner.Permissions)
		require.True(t, owner.HasPermission("anything:at-all"))
	})

	t.Run("second run leaves the account alone", func(t *testing.T) {
		before := f.user(t, "root@example.com")

		created, err := boot.EnsureOwner(ctx, OwnerSeed{Email: "root@example.com", Password: "a-different-password"})
		require.NoError(t, err)
		require.False(t, created)

		after := f.user(t, "root@example.com")
		require.Equal(t, before.PasswordDigest, after.PasswordDigest)

		_, err = f.sessions.Login(ctx, LoginRequest{Identifier: "owner", Password: "owner-password", ClientIP: clientIP})
		require.NoError(t, err)
	})

	t.Run("username collision", func(t *testing.T) {
		_, err := boot.EnsureOwner(ctx, OwnerSeed{Email: "other@example.com", Password: "owner-password"})
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := boot.EnsureOwner(ctx, OwnerSeed{Email: "x@example.com", Username: "xowner", Password: "short"})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})
}
