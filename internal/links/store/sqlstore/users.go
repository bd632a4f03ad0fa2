package sqlstore

import (
	"context"
	"time"

	"github.com/aussiebroadwan/links/internal/links/domain"
	"github.com/aussiebroadwan/links/internal/links/store"
	"github.com/jmoiron/sqlx"
)

type userRow struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"pw_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r userRow) domain() domain.User {
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

type usersRepo struct {
	q queryer
	d Dialect
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.q, &row, r.q.Rebind(
		`SELECT id, username, pw_hash, created_at FROM users WHERE username = ?`,
	), username)
	if err != nil {
		return domain.User{}, r.d.mapError(err)
	}
	return row.domain(), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, r.q.Rebind(
		`INSERT INTO users (id, username, pw_hash, created_at) VALUES (?, ?, ?, ?)`,
	), u.ID, u.Username, u.PasswordHash, u.CreatedAt.UTC())
	return r.d.mapError(err)
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	res, err := r.q.ExecContext(ctx, r.q.Rebind(`DELETE FROM users WHERE id = ?`), userID)
	if err != nil {
		return r.d.mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		`SELECT id, username, pw_hash, created_at FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, r.d.mapError(err)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.domain()
	}
	return users, nil
}
