package pets

import (
	"context"
	"fmt"

	"people-pets-api/internal/domain/model"
)

type Service struct {
	repo   Repository
	owners OwnerLookup
}

func NewService(repo Repository, owners OwnerLookup) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
	}
}

// Detail es una mascota con su dueño resuelto.
type Detail struct {
	Pet   model.Pet
	Owner model.Person
}

func (s *Service) Create(ctx context.Context, in model.PetFields) (Detail, error) {
	in.Normalize()
	if err := model.Validate(in); err != nil {
		return Detail{}, err
	}

	owner, err := s.resolveOwner(ctx, in.Owner)
	if err != nil {
		return Detail{}, err
	}

	p, err := s.repo.Create(ctx, in.Pet())
	if err != nil {
		return Detail{}, fmt.Errorf("create pet: %w", asOwnerError(in.Owner, err))
	}
	return Detail{Pet: p, Owner: owner}, nil
}

// Update aplica solo los campos presentes en patch. Si cambia owner, el nuevo dueño debe existir.
func (s *Service) Update(ctx context.Context, id int64, patch model.PetPatch) (Detail, error) {
	patch.Normalize()
	if err := model.Validate(patch); err != nil {
		return Detail{}, err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return Detail{}, err
	}
	if patch.Owner != nil {
		if _, err := s.resolveOwner(ctx, *patch.Owner); err != nil {
			return Detail{}, err
		}
	}

	if !patch.IsEmpty() {
		if err := s.repo.Update(ctx, id, patch); err != nil {
			if patch.Owner != nil {
				err = asOwnerError(*patch.Owner, err)
			}
			return Detail{}, fmt.Errorf("update pet %d: %w", id, err)
		}
	}
	return s.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	owner, err := s.owners.GetByID(ctx, p.OwnerID)
	if err != nil {
		return Detail{}, fmt.Errorf("get owner of pet %d: %w", id, err)
	}
	return Detail{Pet: p, Owner: owner}, nil
}

func (s *Service) List(ctx context.Context) ([]Detail, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	// varios pets suelen compartir dueño
	owners := map[int64]model.Person{}
	out := make([]Detail, 0, len(items))
	for _, p := range items {
		owner, ok := owners[p.OwnerID]
		if !ok {
			owner, err = s.owners.GetByID(ctx, p.OwnerID)
			if err != nil {
				return nil, fmt.Errorf("get owner of pet %d: %w", p.ID, err)
			}
			owners[p.OwnerID] = owner
		}
		out = append(out, Detail{Pet: p, Owner: owner})
	}
	return out, nil
}
