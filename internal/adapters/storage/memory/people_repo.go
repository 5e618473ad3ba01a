package memory

import (
	"context"

	"people-pets-api/internal/domain/model"
)

type PeopleRepo struct {
	s *Store
}

func NewPeopleRepo(s *Store) *PeopleRepo {
	return &PeopleRepo{s: s}
}

func (r *PeopleRepo) Create(ctx context.Context, p model.Person) (model.Person, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastPerson++
	p.ID = r.s.lastPerson
	r.s.people[p.ID] = p
	return p, nil
}

func (r *PeopleRepo) Update(ctx context.Context, id int64, patch model.PersonPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.people[id]
	if !ok {
		return model.ErrNotFound
	}
	r.s.people[id] = patch.Apply(current)
	return nil
}

func (r *PeopleRepo) GetByID(ctx context.Context, id int64) (model.Person, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.people[id]
	if !ok {
		return model.Person{}, model.ErrNotFound
	}
	return p, nil
}

func (r *PeopleRepo) List(ctx context.Context) ([]model.Person, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Person, 0, len(r.s.people))
	for _, p := range r.s.people {
		out = append(out, p)
	}
	return sortedPeople(out), nil
}

// Delete borra la persona y sus mascotas (ON DELETE CASCADE).
func (r *PeopleRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.people[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.s.people, id)
	for petID, pet := range r.s.pets {
		if pet.OwnerID == id {
			delete(r.s.pets, petID)
		}
	}
	return nil
}
