package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"people-pets-api/internal/domain/model"
)

type PetsRepo struct {
	db *sql.DB
	d  Dialect
}

func NewPetsRepo(db *sql.DB, d Dialect) *PetsRepo {
	return &PetsRepo{db: db, d: d}
}

func (r *PetsRepo) Create(ctx context.Context, p model.Pet) (model.Pet, error) {
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`
		INSERT INTO pet (name, age, owner_id)
		VALUES (?, ?, ?)
		RETURNING id
	`),
		p.Name,
		p.Age,
		p.OwnerID,
	).Scan(&p.ID)
	if err != nil {
		if r.d.IsForeignKeyViolation(err) {
			return model.Pet{}, model.ErrOwnerNotFound
		}
		return model.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, id int64, patch model.PetPatch) error {
	var set []assignment
	if patch.Name != nil {
		set = append(set, assignment{"name", *patch.Name})
	}
	if patch.Age != nil {
		set = append(set, assignment{"age", *patch.Age})
	}
	if patch.Owner != nil {
		set = append(set, assignment{"owner_id", *patch.Owner})
	}
	if len(set) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	q, args := updateQuery("pet", set, id)
	res, err := r.db.ExecContext(ctx, r.d.Rebind(q), args...)
	if err != nil {
		if r.d.IsForeignKeyViolation(err) {
			return model.ErrOwnerNotFound
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (model.Pet, error) {
	row := r.db.QueryRowContext(ctx, r.d.Rebind(`
		SELECT id, name, age, owner_id
		FROM pet
		WHERE id = ?
	`), id)

	var p model.Pet
	if err := row.Scan(&p.ID, &p.Name, &p.Age, &p.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Pet{}, model.ErrNotFound
		}
		return model.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]model.Pet, error) {
	return r.query(ctx, `
		SELECT id, name, age, owner_id
		FROM pet
		ORDER BY id ASC
	`)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Pet, error) {
	return r.query(ctx, r.d.Rebind(`
		SELECT id, name, age, owner_id
		FROM pet
		WHERE owner_id = ?
		ORDER BY id ASC
	`), ownerID)
}

func (r *PetsRepo) query(ctx context.Context, q string, args ...any) ([]model.Pet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Pet, 0)
	for rows.Next() {
		var p model.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.OwnerID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
