package sqlstore

import (
	"context"
	"time"

	"github.com/aussiebroadwan/links/internal/links/domain"
	"github.com/jmoiron/sqlx"
)

type redirectRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Path      string    `db:"path"`
	URL       string    `db:"url"`
	CreatedAt time.Time `db:"created_at"`
}

func (r redirectRow) domain() domain.Redirect {
	return domain.Redirect{
		ID:        r.ID,
		UserID:    r.UserID,
		Path:      r.Path,
		URL:       r.URL,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

type redirectsRepo struct {
	q queryer
	d Dialect
}

func (r *redirectsRepo) ListRedirectsByUser(ctx context.Context, userID string) ([]domain.Redirect, error) {
	var rows []redirectRow
	err := sqlx.SelectContext(ctx, r.q, &rows, r.q.Rebind(
		`SELECT id, user_id, path, url, created_at FROM redirects WHERE user_id = ? ORDER BY id`,
	), userID)
	if err != nil {
		return nil, r.d.mapError(err)
	}

	out := make([]domain.Redirect, len(rows))
	for i, row := range rows {
		out[i] = row.domain()
	}
	return out, nil
}

func (r *redirectsRepo) CreateRedirect(ctx context.Context, red domain.Redirect) error {
	_, err := r.q.ExecContext(ctx, r.q.Rebind(
		`INSERT INTO redirects (id, user_id, path, url, created_at) VALUES (?, ?, ?, ?, ?)`,
	), red.ID, red.UserID, red.Path, red.URL, red.CreatedAt.UTC())
	return r.d.mapError(err)
}

func (r *redirectsRepo) GetRedirectByPath(ctx context.Context, path string) (domain.Redirect, error) {
	var row redirectRow
	err := sqlx.GetContext(ctx, r.q, &row, r.q.Rebind(
		`SELECT id, user_id, path, url, created_at FROM redirects WHERE path = ?`,
	), path)
	if err != nil {
		return domain.Redirect{}, r.d.mapError(err)
	}
	return row.domain(), nil
}

func (r *redirectsRepo) DeleteRedirect(ctx context.Context, userID, path string) (int64, error) {
	res, err := r.q.ExecContext(ctx, r.q.Rebind(
		`DELETE FROM redirects WHERE path = ? AND user_id = ?`,
	), path, userID)
	if err != nil {
		return 0, r.d.mapError(err)
	}
	return res.RowsAffected()
}

func (r *redirectsRepo) CountRedirectsByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := sqlx.GetContext(ctx, r.q, &n, r.q.Rebind(
		`SELECT COUNT(*) FROM redirects WHERE user_id = ?`,
	), userID)
	return n, r.d.mapError(err)
}
