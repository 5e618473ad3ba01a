package memory

import (
	"context"

	"people-pets-api/internal/domain/model"
)

type PetsRepo struct {
	s *Store
}

func NewPetsRepo(s *Store) *PetsRepo {
	return &PetsRepo{s: s}
}

func (r *PetsRepo) Create(ctx context.Context, p model.Pet) (model.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.people[p.OwnerID]; !ok {
		return model.Pet{}, model.ErrOwnerNotFound
	}

	r.s.lastPet++
	p.ID = r.s.lastPet
	r.s.pets[p.ID] = p
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, id int64, patch model.PetPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.pets[id]
	if !ok {
		return model.ErrNotFound
	}
	if patch.Owner != nil {
		if _, ok := r.s.people[*patch.Owner]; !ok {
			return model.ErrOwnerNotFound
		}
	}
	r.s.pets[id] = patch.Apply(current)
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (model.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return model.Pet{}, model.ErrNotFound
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]model.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Pet, 0, len(r.s.pets))
	for _, p := range r.s.pets {
		out = append(out, p)
	}
	return sortedPets(out), nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Pet, 0)
	for _, p := range r.s.pets {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return sortedPets(out), nil
}
