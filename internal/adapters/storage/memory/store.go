package memory

import (
	"sort"
	"sync"

	"people-pets-api/internal/domain/model"
)

// Store guarda personas y mascotas en memoria con las mismas reglas que las tablas SQL:
// ids autoincrementales, FK pet -> person y borrado en cascada.
type Store struct {
	mu sync.RWMutex

	people     map[int64]model.Person
	pets       map[int64]model.Pet
	lastPerson int64
	lastPet    int64
}

func NewStore() *Store {
	return &Store{
		people: make(map[int64]model.Person),
		pets:   make(map[int64]model.Pet),
	}
}

// ids ascendentes, igual que el ORDER BY id de los stores SQL.
func sortedPets(in []model.Pet) []model.Pet {
	sort.Slice(in, func(i, j int) bool { return in[i].ID < in[j].ID })
	return in
}

func sortedPeople(in []model.Person) []model.Person {
	sort.Slice(in, func(i, j int) bool { return in[i].ID < in[j].ID })
	return in
}
