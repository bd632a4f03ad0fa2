package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/links/internal/links/store"
	"github.com/jmoiron/sqlx"
)

type txStore struct {
	tx      *sqlx.Tx
	dialect Dialect
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

// Ping is a no-op, the transaction already holds a live connection.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx

func (t *txStore) Users() store.Users         { return &usersRepo{q: t.tx, d: t.dialect} }
func (t *txStore) Redirects() store.Redirects { return &redirectsRepo{q: t.tx, d: t.dialect} }
