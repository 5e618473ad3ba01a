package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"people-pets-api/internal/adapters/storage/sqlstore"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// MemoryPath pide una base en memoria privada para este proceso.
const MemoryPath = ":memory:"

// Open abre (o crea) la base en path con foreign keys activas y crea el esquema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == MemoryPath {
		return OpenMemory(ctx)
	}
	return open(ctx, "file:"+path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
}

// OpenMemory abre una base en memoria compartida por todas las conexiones del pool.
// El nombre es único para que dos llamadas (p.ej. tests en paralelo) no compartan datos.
func OpenMemory(ctx context.Context) (*sql.DB, error) {
	return open(ctx, "file:"+uuid.NewString()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
}

func open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite admite un solo escritor; con una conexión evitamos SQLITE_BUSY/LOCKED.
	// Además mantiene viva la base en memoria mientras el pool esté abierto.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := sqlstore.Migrate(ctx, db, Dialect{}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
