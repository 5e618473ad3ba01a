package postgres

import (
	"errors"

	"people-pets-api/internal/adapters/storage/sqlstore"

	"github.com/jackc/pgx/v5/pgconn"
)

// foreign_key_violation
const codeForeignKeyViolation = "23503"

type Dialect struct{}

var _ sqlstore.Dialect = Dialect{}

func (Dialect) Name() string { return "postgres" }

func (Dialect) Rebind(query string) string { return sqlstore.RebindDollar(query) }

func (Dialect) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS person (
			id BIGSERIAL PRIMARY KEY,
			first_name VARCHAR(32) NOT NULL,
			last_name VARCHAR(32) NOT NULL,
			age INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS pet (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(32) NOT NULL,
			age INTEGER NOT NULL DEFAULT 0,
			owner_id BIGINT NOT NULL REFERENCES person(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS pet_owner_id_idx ON pet(owner_id)`,
	}
}

func (Dialect) IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}
