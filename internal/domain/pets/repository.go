package pets

import (
	"context"

	"people-pets-api/internal/domain/model"
)

type Repository interface {
	Create(ctx context.Context, p model.Pet) (model.Pet, error)
	Update(ctx context.Context, id int64, patch model.PetPatch) error
	GetByID(ctx context.Context, id int64) (model.Pet, error)
	List(ctx context.Context) ([]model.Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Pet, error)
}
