package model

import "strings"

// Pet es una mascota; siempre pertenece a exactamente una Person.
type Pet struct {
	ID      int64
	Name    string
	Age     int
	OwnerID int64
}

// PetFields son los campos escribibles al crear una mascota.
type PetFields struct {
	Name  string `json:"name" validate:"required,max=32"`
	Age   int    `json:"age" validate:"min=-2147483648,max=2147483647"`
	Owner int64  `json:"owner" validate:"required"`
}

func (f *PetFields) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
}

func (f PetFields) Pet() Pet {
	return Pet{
		Name:    f.Name,
		Age:     f.Age,
		OwnerID: f.Owner,
	}
}

// PetPatch es una actualización parcial de una mascota: nil = no tocar.
type PetPatch struct {
	Name  *string `json:"name" validate:"omitnil,notblank,max=32"`
	Age   *int    `json:"age" validate:"omitnil,min=-2147483648,max=2147483647"`
	Owner *int64  `json:"owner" validate:"omitnil,gt=0"`
}

func (p *PetPatch) Normalize() {
	trimPtr(p.Name)
}

func (p PetPatch) IsEmpty() bool {
	return p.Name == nil && p.Age == nil && p.Owner == nil
}

func (p PetPatch) Apply(pet Pet) Pet {
	if p.Name != nil {
		pet.Name = *p.Name
	}
	if p.Age != nil {
		pet.Age = *p.Age
	}
	if p.Owner != nil {
		pet.OwnerID = *p.Owner
	}
	return pet
}
