// Package drivers picks a store implementation from a connection string.
package drivers

import (
	"fmt"

	"github.com/aussiebroadwan/links/internal/links/store"
	"github.com/aussiebroadwan/links/internal/links/store/drivers/postgres"
	"github.com/aussiebroadwan/links/internal/links/store/drivers/sqlite"
)

// Open connects to conn and applies pending migrations. postgres:// and
// postgresql:// URLs select PostgreSQL; anything else is a SQLite database
// path or URI.
func Open(conn string) (store.Store, error) {
	var (
		st  store.Store
		err error
	)

	if postgres.IsDSN(conn) {
		st, err = postgres.NewStore(conn)
	} else {
		st, err = sqlite.NewStore(conn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	return st, nil
}
