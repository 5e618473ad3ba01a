package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Dialect aísla lo que cambia entre Postgres y SQLite; las queries se escriben con "?".
type Dialect interface {
	Name() string

	// Rebind adapta los placeholders "?" al formato del motor.
	Rebind(query string) string

	// Schema son los CREATE TABLE/INDEX idempotentes de person y pet.
	Schema() []string

	// IsForeignKeyViolation reconoce el error de FK pet.owner_id -> person.id.
	IsForeignKeyViolation(err error) bool
}

// Migrate crea las tablas si no existen. No hay migraciones posteriores.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	for _, stmt := range d.Schema() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s migrate: %w", d.Name(), err)
		}
	}
	return nil
}

// RebindDollar convierte "?" en "$1, $2, ..." (Postgres).
func RebindDollar(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

type assignment struct {
	column string
	value  any
}

// updateQuery arma "UPDATE table SET a = ?, b = ? WHERE id = ?".
func updateQuery(table string, set []assignment, id int64) (string, []any) {
	cols := make([]string, 0, len(set))
	args := make([]any, 0, len(set)+1)
	for _, a := range set {
		cols = append(cols, a.column+" = ?")
		args = append(args, a.value)
	}
	args = append(args, id)
	return "UPDATE " + table + " SET " + strings.Join(cols, ", ") + " WHERE id = ?", args
}
