package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
)

type followsRepo struct {
	db dbtx
}

func scanFollow(row rowScanner) (domain.Follow, error) {
	var (
		f         domain.Follow
		createdAt int64
	)
	if err := row.Scan(&f.FollowerEmail, &f.FollowingEmail, &createdAt); err != nil {
		return domain.Follow{}, err
	}
	f.CreatedAt = fromMillis(createdAt)
	return f, nil
}

func (r *followsRepo) CreateFollow(ctx context.Context, f domain.Follow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO follows (follower_email, following_email, created_at) VALUES (?, ?, ?)`,
		strings.ToLower(f.FollowerEmail), strings.ToLower(f.FollowingEmail), toMillis(f.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *followsRepo) GetFollow(ctx context.Context, follower, following string) (domain.Follow, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT follower_email, following_email, created_at FROM follows
		 WHERE follower_email = ? AND following_email = ?`,
		strings.ToLower(follower), strings.ToLower(following),
	)
	f, err := scanFollow(row)
	if err != nil {
		return domain.Follow{}, mapNotFound(err)
	}
	return f, nil
}

func (r *followsRepo) DeleteFollow(ctx context.Context, follower, following string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_email = ? AND following_email = ?`,
		strings.ToLower(follower), strings.ToLower(following),
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *followsRepo) ListFollowers(ctx context.Context, email string, limit int) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+prefixed("u", userColumns)+` FROM follows f
		 JOIN users u ON u.email = f.follower_email
		 WHERE f.following_email = ?
		 ORDER BY f.created_at DESC, u.email
		 LIMIT ?`,
		strings.ToLower(email), limit,
	)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func (r *followsRepo) ListFollowing(ctx context.Context, email string, limit int) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+prefixed("u", userColumns)+` FROM follows f
		 JOIN users u ON u.email = f.following_email
		 WHERE f.follower_email = ?
		 ORDER BY f.created_at DESC, u.email
		 LIMIT ?`,
		strings.ToLower(email), limit,
	)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func (r *followsRepo) ListByUser(ctx context.Context, email string) ([]domain.Follow, error) {
	email = strings.ToLower(email)
	rows, err := r.db.QueryContext(ctx,
		`SELECT follower_email, following_email, created_at FROM follows
		 WHERE follower_email = ? OR following_email = ?
		 ORDER BY created_at DESC`,
		email, email,
	)
	if err != nil {
		return nil, err
	}
	return collectFollows(rows)
}

func (r *followsRepo) ListAll(ctx context.Context, limit int) ([]domain.Follow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT follower_email, following_email, created_at FROM follows
		 ORDER BY created_at DESC, follower_email, following_email
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return collectFollows(rows)
}

func (r *followsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM follows`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func collectFollows(rows *sql.Rows) ([]domain.Follow, error) {
	defer rows.Close()

	var out []domain.Follow
	for rows.Next() {
		f, err := scanFollow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// prefixed qualifies a comma-separated column list with a table alias.
func prefixed(alias, columns string) string {
	cols := strings.Split(columns, ",")
	for i, c := range cols {
		cols[i] = alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(cols, ", ")
}
