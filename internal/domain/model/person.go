package model

import "strings"

// MaxNameLength es el largo máximo de los campos de texto de Person y Pet.
const MaxNameLength = 32

// Person es una persona registrada; puede tener cero o más mascotas.
type Person struct {
	ID        int64
	FirstName string
	LastName  string
	Age       int
}

// PersonFields son los campos escribibles al crear una persona.
// Age es opcional y vale 0 si no viene.
type PersonFields struct {
	FirstName string `json:"first_name" validate:"required,max=32"`
	LastName  string `json:"last_name" validate:"required,max=32"`
	Age       int    `json:"age" validate:"min=-2147483648,max=2147483647"`
}

func (f *PersonFields) Normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
}

// Person arma la entidad (sin id, lo asigna el store).
func (f PersonFields) Person() Person {
	return Person{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Age:       f.Age,
	}
}

// PersonPatch es una actualización parcial: nil = no tocar.
type PersonPatch struct {
	FirstName *string `json:"first_name" validate:"omitnil,notblank,max=32"`
	LastName  *string `json:"last_name" validate:"omitnil,notblank,max=32"`
	Age       *int    `json:"age" validate:"omitnil,min=-2147483648,max=2147483647"`
}

func (p *PersonPatch) Normalize() {
	trimPtr(p.FirstName)
	trimPtr(p.LastName)
}

func (p PersonPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Age == nil
}

// Apply devuelve una copia de person con los campos presentes en el patch.
func (p PersonPatch) Apply(person Person) Person {
	if p.FirstName != nil {
		person.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		person.LastName = *p.LastName
	}
	if p.Age != nil {
		person.Age = *p.Age
	}
	return person
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
