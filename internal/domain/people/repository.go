package people

import (
	"context"

	"people-pets-api/internal/domain/model"
)

type Repository interface {
	Create(ctx context.Context, p model.Person) (model.Person, error)
	Update(ctx context.Context, id int64, patch model.PersonPatch) error
	GetByID(ctx context.Context, id int64) (model.Person, error)
	List(ctx context.Context) ([]model.Person, error)

	// Delete borra la persona y, en cascada, sus mascotas.
	Delete(ctx context.Context, id int64) error
}

// PetLister expone las mascotas de un dueño.
// Se define acá (y no importando pets) para evitar ciclos people <-> pets.
type PetLister interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Pet, error)
}
