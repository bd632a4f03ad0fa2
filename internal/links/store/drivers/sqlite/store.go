package sqlite

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/aussiebroadwan/links/internal/links/store/sqlstore"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Pragmas applied to every pooled connection. foreign_keys has to be set per
// connection, otherwise ON DELETE CASCADE silently does nothing.
var defaultPragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"journal_mode(WAL)",
}

type Store struct {
	*sqlstore.Store
}

// NewStore opens the SQLite database at dsn, which may be a bare file path,
// a "file:" URI or ":memory:".
func NewStore(dsn string) (*Store, error) {
	memory := strings.Contains(dsn, ":memory:")

	db, err := sql.Open(DriverName, withPragmas(dsn, memory))
	if err != nil {
		return nil, err
	}

	// Every connection to :memory: is its own database.
	if memory {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		Store: sqlstore.New(db, DriverName, sqlstore.Dialect{
			IsUniqueViolation: isUniqueViolation,
			Migrate:           applyMigrations,
		}),
	}, nil
}

func withPragmas(dsn string, memory bool) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}

	var params []string
	for _, p := range defaultPragmas {
		name := p[:strings.IndexByte(p, '(')]
		if strings.Contains(dsn, "_pragma="+name) {
			continue
		}
		// WAL is meaningless for in-memory databases.
		if memory && name == "journal_mode" {
			continue
		}
		params = append(params, "_pragma="+p)
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

func isUniqueViolation(err error) bool {
	var serr *moderncsqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
