package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this
// and expose sub-repositories so a transaction hands out the same repos
// bound to the tx instead of the pool.
type Store interface {
	Users() Users
	Follows() Follows

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Users is the credential and profile store. Mutations that match no row
// return ErrNotFound.
type Users interface {
	// GetUserByEmail looks up the canonical identity.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByUsername resolves a username, case-insensitively.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user. A clash on email or username returns
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns up to limit users, newest first.
	ListUsers(ctx context.Context, limit int) ([]domain.User, error)

	// UpdateProfile applies the non-nil fields and bumps updated_at.
	UpdateProfile(ctx context.Context, email string, p domain.ProfileUpdate, at time.Time) error

	// UpdatePassword replaces digest and salt together.
	UpdatePassword(ctx context.Context, email string, digest, salt []byte, at time.Time) error

	// TouchLastLogin records a successful login.
	TouchLastLogin(ctx context.Context, email string, at time.Time) error

	// SetActive suspends or reinstates an account.
	SetActive(ctx context.Context, email string, active bool, at time.Time) error

	// DeleteUser removes the user; follow edges cascade per schema.
	DeleteUser(ctx context.Context, email string) error

	// AdjustFollowCounts adds the deltas to the denormalised counters,
	// never letting them drop below zero.
	AdjustFollowCounts(ctx context.Context, email string, followersDelta, followingDelta int) error

	// Stats aggregates counts for the admin dashboard.
	Stats(ctx context.Context, since time.Time) (domain.UserStats, error)

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

// Follows stores the directed follow graph.
type Follows interface {
	// CreateFollow inserts an edge. An existing edge returns ErrAlreadyExists.
	CreateFollow(ctx context.Context, f domain.Follow) error

	// GetFollow returns the edge or ErrNotFound.
	GetFollow(ctx context.Context, follower, following string) (domain.Follow, error)

	// DeleteFollow removes the edge or returns ErrNotFound.
	DeleteFollow(ctx context.Context, follower, following string) error

	// ListFollowers returns the users following email, newest edge first.
	ListFollowers(ctx context.Context, email string, limit int) ([]domain.User, error)

	// ListFollowing returns the users email follows, newest edge first.
	ListFollowing(ctx context.Context, email string, limit int) ([]domain.User, error)

	// ListByUser returns every edge touching email in either direction.
	ListByUser(ctx context.Context, email string) ([]domain.Follow, error)

	// ListAll returns up to limit edges, newest first.
	ListAll(ctx context.Context, limit int) ([]domain.Follow, error)

	// Count returns the number of edges.
	Count(ctx context.Context) (int, error)
}
