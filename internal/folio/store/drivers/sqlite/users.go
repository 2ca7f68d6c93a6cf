package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
)

const userColumns = `email, username, display_name, bio, photo_url,
	password_digest, password_salt, role, permissions, active,
	followers, following, created_at, updated_at, last_login_at, password_changed_at`

type usersRepo struct {
	db dbtx
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u             domain.User
		permissions   string
		active        int
		createdAt     int64
		updatedAt     int64
		lastLogin     sql.NullInt64
		passwordSetAt sql.NullInt64
	)

	err := row.Scan(
		&u.Email, &u.Username, &u.DisplayName, &u.Bio, &u.PhotoURL,
		&u.PasswordDigest, &u.PasswordSalt, &u.Role, &permissions, &active,
		&u.Followers, &u.Following, &createdAt, &updatedAt, &lastLogin, &passwordSetAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.Permissions = splitAndFilter(permissions)
	u.Active = active == 1
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	u.LastLoginAt = fromNullMillis(lastLogin)
	u.PasswordChangedAt = fromNullMillis(passwordSetAt)
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`,
		strings.ToLower(email),
	)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	// username carries COLLATE NOCASE, so equality is case-insensitive
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`,
		username,
	)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.ToLower(u.Email), u.Username, u.DisplayName, u.Bio, u.PhotoURL,
		u.PasswordDigest, u.PasswordSalt, u.Role, joinPermissions(u.Permissions), boolToInt(u.Active),
		u.Followers, u.Following, toMillis(u.CreatedAt), toMillis(u.UpdatedAt),
		nullMillis(u.LastLoginAt), nullMillis(u.PasswordChangedAt),
	)
	return mapConstraint(err)
}

func (r *usersRepo) ListUsers(ctx context.Context, limit int) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, email LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, email string, p domain.ProfileUpdate, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET
			display_name = COALESCE(?, display_name),
			bio          = COALESCE(?, bio),
			photo_url    = COALESCE(?, photo_url),
			updated_at   = ?
		 WHERE email = ?`,
		nullString(p.DisplayName), nullString(p.Bio), nullString(p.PhotoURL),
		toMillis(at), strings.ToLower(email),
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) UpdatePassword(ctx context.Context, email string, digest, salt []byte, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_digest = ?, password_salt = ?, password_changed_at = ?, updated_at = ?
		 WHERE email = ?`,
		digest, salt, toMillis(at), toMillis(at), strings.ToLower(email),
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, email string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login_at = ? WHERE email = ?`,
		toMillis(at), strings.ToLower(email),
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) SetActive(ctx context.Context, email string, active bool, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET active = ?, updated_at = ? WHERE email = ?`,
		boolToInt(active), toMillis(at), strings.ToLower(email),
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) DeleteUser(ctx context.Context, email string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE email = ?`, strings.ToLower(email))
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) AdjustFollowCounts(ctx context.Context, email string, followersDelta, followingDelta int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET
			followers = MAX(followers + ?, 0),
			following = MAX(following + ?, 0)
		 WHERE email = ?`,
		followersDelta, followingDelta, strings.ToLower(email),
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) Stats(ctx context.Context, since time.Time) (domain.UserStats, error) {
	var s domain.UserStats
	err := r.db.QueryRowContext(ctx,
		`SELECT
			COUNT(*),
			COALESCE(SUM(active = 1), 0),
			COALESCE(SUM(active = 0), 0),
			COALESCE(SUM(role = 'OWNER'), 0),
			COALESCE(SUM(created_at >= ?), 0)
		 FROM users`,
		toMillis(since),
	).Scan(&s.Total, &s.Active, &s.Suspended, &s.Owners, &s.NewSince)
	if err != nil {
		return domain.UserStats{}, err
	}
	return s, nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func collectUsers(rows *sql.Rows) ([]domain.User, error) {
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: toMillis(*t), Valid: true}
}
