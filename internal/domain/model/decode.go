package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

// Decode lee un objeto JSON de r hacia dst (puntero a struct).
//
// A diferencia de json.Decoder, reporta todos los campos con tipo incorrecto
// y rechaza null explícito en campos conocidos; las keys desconocidas se ignoran.
// Errores: ErrInvalidJSON (envuelto) o *ValidationError.
func Decode(r io.Reader, dst any) error {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		// %w en ambos: el handler distingue *http.MaxBytesError (413) de JSON roto (400).
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if raw == nil {
		return fmt.Errorf("%w: expected a json object", ErrInvalidJSON)
	}

	known := jsonFields(reflect.TypeOf(dst))

	keys := make([]string, 0, len(raw))
	for k := range raw {
		if _, ok := known[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	verr := &ValidationError{}
	for _, k := range keys {
		v := bytes.TrimSpace(raw[k])
		if string(v) == "null" {
			verr.Add(k, "this field may not be null")
			continue
		}

		// Un campo por vez: un tipo incorrecto no oculta los demás.
		b, err := json.Marshal(map[string]json.RawMessage{k: v})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if err := json.Unmarshal(b, dst); err != nil {
			var te *json.UnmarshalTypeError
			if errors.As(err, &te) {
				verr.Add(k, "must be "+describeKind(te.Type))
				continue
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}

	return verr.orNil()
}

// Normalizer es un payload que se limpia (trim) antes de validar.
type Normalizer interface {
	Normalize()
}

// DecodeValid decodifica r en dst, lo normaliza y lo valida. Los errores de tipo de Decode
// y los de las reglas de validación salen juntos en un solo *ValidationError; un campo con
// error de tipo no se vuelve a reportar como "required".
func DecodeValid(r io.Reader, dst Normalizer) error {
	derr := Decode(r, dst)

	verr := &ValidationError{}
	if derr != nil && !errors.As(derr, &verr) {
		return derr
	}

	dst.Normalize()
	err := Validate(dst)
	if err == nil {
		return verr.orNil()
	}

	var rules *ValidationError
	if !errors.As(err, &rules) {
		return err
	}

	seen := make(map[string]bool, len(verr.Fields))
	for _, f := range verr.Fields {
		seen[f.Field] = true
	}
	for _, f := range rules.Fields {
		if !seen[f.Field] {
			verr.Add(f.Field, f.Message)
		}
	}
	return verr.orNil()
}

// jsonFields junta los nombres JSON de un struct, incluyendo structs embebidos.
func jsonFields(t reflect.Type) map[string]struct{} {
	out := map[string]struct{}{}
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return out
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" {
			for k := range jsonFields(f.Type) {
				out[k] = struct{}{}
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		out[name] = struct{}{}
	}
	return out
}

func describeKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a valid " + t.String()
	}
}
