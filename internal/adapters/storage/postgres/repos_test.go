package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"people-pets-api/internal/adapters/storage/sqlstore"
	"people-pets-api/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestPeopleRepo_CreateUsesDollarPlaceholders(t *testing.T) {
	db, mock := setupMock(t)
	repo := sqlstore.NewPeopleRepo(db, Dialect{})

	mock.ExpectQuery(regexp.QuoteMeta(`VALUES ($1, $2, $3)`)).
		WithArgs("Jesse", "Sublett", 67).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	p, err := repo.Create(context.Background(), model.Person{FirstName: "Jesse", LastName: "Sublett", Age: 67})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPeopleRepo_UpdateOnlySuppliedColumns(t *testing.T) {
	db, mock := setupMock(t)
	repo := sqlstore.NewPeopleRepo(db, Dialect{})

	first := "JESSE"
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE person SET first_name = $1 WHERE id = $2`)).
		WithArgs("JESSE", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 1, model.PersonPatch{FirstName: &first})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPeopleRepo_UpdateMissingRow(t *testing.T) {
	db, mock := setupMock(t)
	repo := sqlstore.NewPeopleRepo(db, Dialect{})

	age := 3
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE person SET age = $1 WHERE id = $2`)).
		WithArgs(3, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 99, model.PersonPatch{Age: &age})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestPeopleRepo_GetByIDNotFound(t *testing.T) {
	db, mock := setupMock(t)
	repo := sqlstore.NewPeopleRepo(db, Dialect{})

	mock.ExpectQuery(regexp.QuoteMeta(`FROM person`)).
		WithArgs(int64(9999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestPetsRepo_CreateTranslatesForeignKeyViolation(t *testing.T) {
	db, mock := setupMock(t)
	repo := sqlstore.NewPetsRepo(db, Dialect{})

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO pet`)).
		WithArgs("Iggy", 5, int64(42)).
		WillReturnError(&pgconn.PgError{Code: codeForeignKeyViolation})

	_, err := repo.Create(context.Background(), model.Pet{Name: "Iggy", Age: 5, OwnerID: 42})
	assert.ErrorIs(t, err, model.ErrOwnerNotFound)
}

func TestPetsRepo_ListByOwner(t *testing.T) {
	db, mock := setupMock(t)
	repo := sqlstore.NewPetsRepo(db, Dialect{})

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE owner_id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age", "owner_id"}).
			AddRow(int64(1), "Iggy", 5, int64(1)).
			AddRow(int64(2), "Bingo", 2, int64(1)))

	out, err := repo.ListByOwner(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []model.Pet{
		{ID: 1, Name: "Iggy", Age: 5, OwnerID: 1},
		{ID: 2, Name: "Bingo", Age: 2, OwnerID: 1},
	}, out)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_RunsSchema(t *testing.T) {
	db, mock := setupMock(t)

	for range (Dialect{}).Schema() {
		mock.ExpectExec(`CREATE`).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, sqlstore.Migrate(context.Background(), db, Dialect{}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDialect_IsForeignKeyViolation(t *testing.T) {
	d := Dialect{}
	assert.True(t, d.IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, d.IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, d.IsForeignKeyViolation(sql.ErrConnDone))
}
