package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
	"github.com/aussiebroadwan/folio/internal/folio/observability"
	"github.com/aussiebroadwan/folio/internal/folio/store/drivers/sqlite"
	"github.com/aussiebroadwan/folio/pkg/cryptox"
	"github.com/aussiebroadwan/folio/pkg/jwtx"
	"github.com/aussiebroadwan/folio/pkg/lockout"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("service-test-secret-0123456789abcdef")

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	store    *sqlite.Store
	clock    *testClock
	codec    *jwtx.Codec
	limiter  *lockout.Limiter
	metrics  *observability.Metrics
	sessions *SessionService
	register *RegistrationService
	profiles *ProfileService
	follows  *FollowService
	admin    *AdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	clock := &testClock{t: time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)}

	codec, err := jwtx.NewCodec(testSecret, jwtx.WithClock(clock.Now))
	require.NoError(t, err)

	limiter := lockout.New(lockout.Config{}, lockout.WithClock(clock.Now))
	metrics := observability.NewMetrics()

	f := &fixture{
		store:   st,
		clock:   clock,
		codec:   codec,
		limiter: limiter,
		metrics: metrics,
	}
	f.sessions = &SessionService{Store: st, Codec: codec, Lockout: limiter, Metrics: metrics, Now: clock.Now}
	f.register = &RegistrationService{Store: st, Sessions: f.sessions, Metrics: metrics, Now: clock.Now}
	f.profiles = &ProfileService{Store: st, Now: clock.Now}
	f.follows = &FollowService{Store: st, Now: clock.Now}
	f.admin = &AdminService{Store: st, Now: clock.Now}
	return f
}

// seedUser inserts a user directly, bypassing registration.
func (f *fixture) seedUser(t *testing.T, email, username, password, role string) domain.User {
	t.Helper()

	salt, err := cryptox.NewSalt()
	require.NoError(t, err)

	perms := domain.DefaultUserPermissions
	if role == domain.RoleOwner {
		perms = []string{domain.PermAll}
	}

	now := f.clock.Now()
	u := domain.User{
		Email:          email,
		Username:       username,
		DisplayName:    username,
		PasswordDigest: cryptox.HashPassword(password, salt),
		PasswordSalt:   salt,
		Role:           role,
		Permissions:    perms,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, f.store.Users().CreateUser(context.Background(), u))
	return u
}

func (f *fixture) user(t *testing.T, email string) domain.User {
	t.Helper()
	u, err := f.store.Users().GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	return u
}
