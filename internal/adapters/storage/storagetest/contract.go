// Package storagetest tiene la batería de pruebas que todo store de people/pets debe pasar.
package storagetest

import (
	"context"
	"testing"

	"people-pets-api/internal/domain/model"
	"people-pets-api/internal/domain/people"
	"people-pets-api/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Repos es lo que cada adapter entrega para correr el contrato.
type Repos struct {
	People people.Repository
	Pets   pets.Repository
}

// Run ejecuta el contrato; newRepos debe devolver un store vacío en cada llamada.
func Run(t *testing.T, newRepos func(t *testing.T) Repos) {
	t.Helper()

	t.Run("person ids are assigned in order", func(t *testing.T) {
		r := newRepos(t)
		ctx := context.Background()

		a, err := r.People.Create(ctx, model.Person{FirstName: "Jesse", LastName: "Sublett", Age: 67})
		require.NoError(t, err)
		b, err := r.People.Create(ctx, model.Person{FirstName: "Ann", LastName: "Lee"})
		require.NoError(t, err)

		assert.Equal(t, int64(1), a.ID)
		assert.Greater(t, b.ID, a.ID)

		got, err := r.People.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a, got)

		all, err := r.People.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Person{a, b}, all)
	})

	t.Run("missing records", func(t *testing.T) {
		r := newRepos(t)
		ctx := context.Background()

		_, err := r.People.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, model.ErrNotFound)
		_, err = r.Pets.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, model.ErrNotFound)

		age := 1
		assert.ErrorIs(t, r.People.Update(ctx, 9999, model.PersonPatch{Age: &age}), model.ErrNotFound)
		assert.ErrorIs(t, r.Pets.Update(ctx, 9999, model.PetPatch{Age: &age}), model.ErrNotFound)
		assert.ErrorIs(t, r.People.Delete(ctx, 9999), model.ErrNotFound)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		r := newRepos(t)
		ctx := context.Background()

		p, err := r.People.Create(ctx, model.Person{FirstName: "Jesse", LastName: "Sublett", Age: 67})
		require.NoError(t, err)

		first := "JESSE"
		require.NoError(t, r.People.Update(ctx, p.ID, model.PersonPatch{FirstName: &first}))

		got, err := r.People.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, model.Person{ID: p.ID, FirstName: "JESSE", LastName: "Sublett", Age: 67}, got)

		zero := 0
		require.NoError(t, r.People.Update(ctx, p.ID, model.PersonPatch{Age: &zero}))
		got, err = r.People.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Age)
		assert.Equal(t, "JESSE", got.FirstName)
	})

	t.Run("pets reference an existing owner", func(t *testing.T) {
		r := newRepos(t)
		ctx := context.Background()

		_, err := r.Pets.Create(ctx, model.Pet{Name: "Ghost", OwnerID: 42})
		assert.ErrorIs(t, err, model.ErrOwnerNotFound)

		owner, err := r.People.Create(ctx, model.Person{FirstName: "Jesse", LastName: "Sublett"})
		require.NoError(t, err)
		pet, err := r.Pets.Create(ctx, model.Pet{Name: "Iggy", Age: 5, OwnerID: owner.ID})
		require.NoError(t, err)

		bad := int64(4242)
		assert.ErrorIs(t, r.Pets.Update(ctx, pet.ID, model.PetPatch{Owner: &bad}), model.ErrOwnerNotFound)

		got, err := r.Pets.GetByID(ctx, pet.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, got.OwnerID)
	})

	t.Run("list by owner", func(t *testing.T) {
		r := newRepos(t)
		ctx := context.Background()

		jesse, err := r.People.Create(ctx, model.Person{FirstName: "Jesse", LastName: "Sublett"})
		require.NoError(t, err)
		ann, err := r.People.Create(ctx, model.Person{FirstName: "Ann", LastName: "Lee"})
		require.NoError(t, err)

		iggy, err := r.Pets.Create(ctx, model.Pet{Name: "Iggy", Age: 5, OwnerID: jesse.ID})
		require.NoError(t, err)
		rex, err := r.Pets.Create(ctx, model.Pet{Name: "Rex", OwnerID: ann.ID})
		require.NoError(t, err)
		bingo, err := r.Pets.Create(ctx, model.Pet{Name: "Bingo", Age: 1, OwnerID: jesse.ID})
		require.NoError(t, err)

		mine, err := r.Pets.ListByOwner(ctx, jesse.ID)
		require.NoError(t, err)
		assert.Equal(t, []model.Pet{iggy, bingo}, mine)

		none, err := r.Pets.ListByOwner(ctx, 777)
		require.NoError(t, err)
		assert.Empty(t, none)

		all, err := r.Pets.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Pet{iggy, rex, bingo}, all)

		// mover una mascota de dueño
		require.NoError(t, r.Pets.Update(ctx, rex.ID, model.PetPatch{Owner: &jesse.ID}))
		mine, err = r.Pets.ListByOwner(ctx, jesse.ID)
		require.NoError(t, err)
		assert.Len(t, mine, 3)
	})

	t.Run("deleting a person cascades to its pets", func(t *testing.T) {
		r := newRepos(t)
		ctx := context.Background()

		jesse, err := r.People.Create(ctx, model.Person{FirstName: "Jesse", LastName: "Sublett"})
		require.NoError(t, err)
		ann, err := r.People.Create(ctx, model.Person{FirstName: "Ann", LastName: "Lee"})
		require.NoError(t, err)

		iggy, err := r.Pets.Create(ctx, model.Pet{Name: "Iggy", OwnerID: jesse.ID})
		require.NoError(t, err)
		rex, err := r.Pets.Create(ctx, model.Pet{Name: "Rex", OwnerID: ann.ID})
		require.NoError(t, err)

		require.NoError(t, r.People.Delete(ctx, jesse.ID))

		_, err = r.People.GetByID(ctx, jesse.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
		_, err = r.Pets.GetByID(ctx, iggy.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		left, err := r.Pets.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Pet{rex}, left)
	})
}
