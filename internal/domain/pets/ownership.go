package pets

import (
	"context"
	"errors"
	"fmt"

	"people-pets-api/internal/domain/model"
)

// OwnerLookup resuelve el dueño de una mascota.
// Lo implementa el repositorio de people; se define acá para evitar ciclos de imports.
type OwnerLookup interface {
	GetByID(ctx context.Context, id int64) (model.Person, error)
}

// resolveOwner traduce "persona inexistente" a un error de validación sobre el campo owner.
func (s *Service) resolveOwner(ctx context.Context, ownerID int64) (model.Person, error) {
	owner, err := s.owners.GetByID(ctx, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Person{}, ownerNotFound(ownerID)
	}
	if err != nil {
		return model.Person{}, fmt.Errorf("get owner %d: %w", ownerID, err)
	}
	return owner, nil
}

func ownerNotFound(ownerID int64) error {
	return model.FieldErr("owner", fmt.Sprintf(`invalid pk "%d" - person does not exist`, ownerID), model.ErrOwnerNotFound)
}

// asOwnerError cubre la carrera en la que el dueño se borra entre el chequeo y la escritura:
// el store rechaza la FK y devuelve ErrOwnerNotFound.
func asOwnerError(ownerID int64, err error) error {
	if errors.Is(err, model.ErrOwnerNotFound) {
		return ownerNotFound(ownerID)
	}
	return err
}
