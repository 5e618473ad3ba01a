// Package storage elige el adapter de persistencia según la configuración.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"people-pets-api/internal/adapters/storage/memory"
	"people-pets-api/internal/adapters/storage/postgres"
	"people-pets-api/internal/adapters/storage/sqlite"
	"people-pets-api/internal/adapters/storage/sqlstore"
	"people-pets-api/internal/config"
	"people-pets-api/internal/domain/people"
	"people-pets-api/internal/domain/pets"
)

// Store agrupa los repos de un mismo backend.
type Store struct {
	Kind   string
	People people.Repository
	Pets   pets.Repository

	db *sql.DB
}

// Close libera el pool SQL si lo hay.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// NewMemory arma un store en memoria (default en dev y tests).
func NewMemory() *Store {
	st := memory.NewStore()
	return &Store{
		Kind:   config.StoreMemory,
		People: memory.NewPeopleRepo(st),
		Pets:   memory.NewPetsRepo(st),
	}
}

// NewSQL arma los repos sobre un *sql.DB ya abierto y migrado.
func NewSQL(kind string, db *sql.DB, d sqlstore.Dialect) *Store {
	return &Store{
		Kind:   kind,
		People: sqlstore.NewPeopleRepo(db, d),
		Pets:   sqlstore.NewPetsRepo(db, d),
		db:     db,
	}
}

func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	switch cfg.Store {
	case config.StoreMemory, "":
		return NewMemory(), nil

	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %q: %w", cfg.SQLitePath, err)
		}
		return NewSQL(config.StoreSQLite, db, sqlite.Dialect{}), nil

	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return NewSQL(config.StorePostgres, db, postgres.Dialect{}), nil

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
