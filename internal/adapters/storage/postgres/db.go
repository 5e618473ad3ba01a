package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"people-pets-api/internal/adapters/storage/sqlstore"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre un pool a Postgres usando pgx (database/sql) y crea el esquema si falta.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	if err := sqlstore.Migrate(ctx, db, Dialect{}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
