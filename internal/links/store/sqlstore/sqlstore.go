// Package sqlstore implements store.Store on top of database/sql for any
// driver whose schema matches the links migrations. The sqlite and postgres
// drivers wrap it, supplying the driver name (which picks the placeholder
// style) and the translation of their constraint errors.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/links/internal/links/store"
	"github.com/jmoiron/sqlx"
)

// Dialect holds the driver specific parts of a Store.
type Dialect struct {
	// IsUniqueViolation reports whether err is a UNIQUE/PRIMARY KEY
	// constraint failure.
	IsUniqueViolation func(error) bool

	// Migrate brings the schema up to date.
	Migrate func(db *sql.DB) error
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	sqlx.ExtContext
}

type Store struct {
	db      *sqlx.DB
	dialect Dialect
}

// New wraps an open database. driverName must be the name db was opened
// with; sqlx uses it to rebind '?' placeholders.
func New(db *sql.DB, driverName string, d Dialect) *Store {
	return &Store{db: sqlx.NewDb(db, driverName), dialect: d}
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ApplyMigrations() error {
	return s.dialect.Migrate(s.db.DB)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, dialect: s.dialect}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after a successful commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users         { return &usersRepo{q: s.db, d: s.dialect} }
func (s *Store) Redirects() store.Redirects { return &redirectsRepo{q: s.db, d: s.dialect} }

func (d Dialect) mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case d.IsUniqueViolation != nil && d.IsUniqueViolation(err):
		return store.ErrAlreadyExists
	default:
		return err
	}
}
