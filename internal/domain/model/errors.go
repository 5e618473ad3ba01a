package model

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound: el registro no existe en el store.
	ErrNotFound = errors.New("not found")

	// ErrOwnerNotFound: la mascota referencia una persona que no existe.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrInvalidJSON: el body no es un objeto JSON válido.
	ErrInvalidJSON = errors.New("invalid json")
)

// FieldError describe un problema con un campo concreto del payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todos los errores de campo de un payload.
// Err es opcional y permite errors.Is contra la causa (p.ej. ErrOwnerNotFound).
type ValidationError struct {
	Fields []FieldError
	Err    error
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// orNil evita devolver un *ValidationError vacío como error no-nil.
func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// FieldErr arma un ValidationError de un solo campo.
func FieldErr(field, msg string, cause error) *ValidationError {
	return &ValidationError{
		Fields: []FieldError{{Field: field, Message: msg}},
		Err:    cause,
	}
}

// WithField suma un error de campo a err si err es nil o un *ValidationError.
// Cualquier otro error (p.ej. ErrInvalidJSON) se devuelve sin cambios.
func WithField(err error, field, msg string) error {
	if err == nil {
		return FieldErr(field, msg, nil)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	for _, f := range verr.Fields {
		if f.Field == field {
			return verr
		}
	}
	verr.Add(field, msg)
	return verr
}
