package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"people-pets-api/internal/domain/model"
)

type PeopleRepo struct {
	db *sql.DB
	d  Dialect
}

func NewPeopleRepo(db *sql.DB, d Dialect) *PeopleRepo {
	return &PeopleRepo{db: db, d: d}
}

func (r *PeopleRepo) Create(ctx context.Context, p model.Person) (model.Person, error) {
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`
		INSERT INTO person (first_name, last_name, age)
		VALUES (?, ?, ?)
		RETURNING id
	`),
		p.FirstName,
		p.LastName,
		p.Age,
	).Scan(&p.ID)
	if err != nil {
		return model.Person{}, err
	}
	return p, nil
}

func (r *PeopleRepo) Update(ctx context.Context, id int64, patch model.PersonPatch) error {
	var set []assignment
	if patch.FirstName != nil {
		set = append(set, assignment{"first_name", *patch.FirstName})
	}
	if patch.LastName != nil {
		set = append(set, assignment{"last_name", *patch.LastName})
	}
	if patch.Age != nil {
		set = append(set, assignment{"age", *patch.Age})
	}
	if len(set) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	q, args := updateQuery("person", set, id)
	res, err := r.db.ExecContext(ctx, r.d.Rebind(q), args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PeopleRepo) GetByID(ctx context.Context, id int64) (model.Person, error) {
	row := r.db.QueryRowContext(ctx, r.d.Rebind(`
		SELECT id, first_name, last_name, age
		FROM person
		WHERE id = ?
	`), id)

	var p model.Person
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Age); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Person{}, model.ErrNotFound
		}
		return model.Person{}, err
	}
	return p, nil
}

func (r *PeopleRepo) List(ctx context.Context) ([]model.Person, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, age
		FROM person
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Person, 0)
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Age); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete depende del ON DELETE CASCADE de pet.owner_id.
func (r *PeopleRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`DELETE FROM person WHERE id = ?`), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
