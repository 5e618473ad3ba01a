package people

import (
	"context"
	"fmt"

	"people-pets-api/internal/domain/model"
)

type Service struct {
	repo Repository
	pets PetLister
}

func NewService(repo Repository, pets PetLister) *Service {
	return &Service{
		repo: repo,
		pets: pets,
	}
}

// Detail es una persona con sus mascotas.
type Detail struct {
	Person model.Person
	Pets   []model.Pet
}

func (s *Service) Create(ctx context.Context, in model.PersonFields) (model.Person, error) {
	in.Normalize()
	if err := model.Validate(in); err != nil {
		return model.Person{}, err
	}

	p, err := s.repo.Create(ctx, in.Person())
	if err != nil {
		return model.Person{}, fmt.Errorf("create person: %w", err)
	}
	return p, nil
}

// Update aplica solo los campos presentes en patch y devuelve el registro releído.
func (s *Service) Update(ctx context.Context, id int64, patch model.PersonPatch) (model.Person, error) {
	patch.Normalize()
	if err := model.Validate(patch); err != nil {
		return model.Person{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Person{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return model.Person{}, fmt.Errorf("update person %d: %w", id, err)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (model.Person, error) {
	return s.repo.GetByID(ctx, id)
}

// PetsOf devuelve las mascotas de la persona, en el orden del store.
func (s *Service) PetsOf(ctx context.Context, personID int64) ([]model.Pet, error) {
	out, err := s.pets.ListByOwner(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("list pets of person %d: %w", personID, err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	pets, err := s.PetsOf(ctx, p.ID)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Person: p, Pets: pets}, nil
}

func (s *Service) List(ctx context.Context) ([]Detail, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}

	out := make([]Detail, 0, len(items))
	for _, p := range items {
		pets, err := s.PetsOf(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, Detail{Person: p, Pets: pets})
	}
	return out, nil
}
