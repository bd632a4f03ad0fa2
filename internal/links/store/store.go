package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/links/internal/links/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Repositories hang off it so a Tx can hand out the same
// repositories bound to the transaction.
type Store interface {
	Users() Users
	Redirects() Redirects

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

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

type Users interface {
	// GetUserByUsername is used by Basic authentication.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a user. A taken username yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes a user by id; owned redirects cascade (per schema).
	// Returns ErrNotFound when no row matched.
	DeleteUser(ctx context.Context, userID string) error

	// ListUsers returns every user ordered by creation.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Redirects interface {
	// ListRedirectsByUser returns the user's redirects in insertion order.
	ListRedirectsByUser(ctx context.Context, userID string) ([]domain.Redirect, error)

	// CreateRedirect inserts a redirect. The path UNIQUE constraint turns a
	// duplicate path, from any user, into ErrAlreadyExists.
	CreateRedirect(ctx context.Context, r domain.Redirect) error

	// GetRedirectByPath looks up a redirect regardless of owner.
	GetRedirectByPath(ctx context.Context, path string) (domain.Redirect, error)

	// DeleteRedirect deletes rows matching path AND userID and reports how
	// many went away.
	DeleteRedirect(ctx context.Context, userID, path string) (int64, error)

	// CountRedirectsByUser is used when deleting users to report the cascade.
	CountRedirectsByUser(ctx context.Context, userID string) (int64, error)
}
