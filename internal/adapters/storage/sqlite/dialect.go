package sqlite

import (
	"errors"
	"strings"

	"people-pets-api/internal/adapters/storage/sqlstore"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Dialect struct{}

var _ sqlstore.Dialect = Dialect{}

func (Dialect) Name() string { return "sqlite" }

// SQLite entiende "?" tal cual.
func (Dialect) Rebind(query string) string { return query }

func (Dialect) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS person (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name VARCHAR(32) NOT NULL,
			last_name VARCHAR(32) NOT NULL,
			age INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS pet (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(32) NOT NULL,
			age INTEGER NOT NULL DEFAULT 0,
			owner_id INTEGER NOT NULL REFERENCES person(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS pet_owner_id_idx ON pet(owner_id)`,
	}
}

func (Dialect) IsForeignKeyViolation(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	// sin extended result codes solo llega SQLITE_CONSTRAINT
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "FOREIGN KEY")
}
