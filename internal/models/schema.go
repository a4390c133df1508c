// internal/models/schema.go
package models

import (
	"fmt"

	"github.com/javajoker/custom-creations-api/internal/utils"
)

// Validate decodes raw JSON input for the given kind, applies the schema
// defaults and checks every constraint. Failures are *utils.ValidationError.
func Validate(kind EntityKind, raw []byte) (Entity, error) {
	switch kind {
	case KindProduct:
		return decode(raw, NewProduct())
	case KindProject:
		return decode(raw, NewProject())
	case KindOrder:
		return decode(raw, NewOrder())
	}
	return nil, fmt.Errorf("unknown entity kind %q", kind)
}

func DecodeProduct(raw []byte) (*Product, error) {
	p := NewProduct()
	if _, err := decode(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}

func DecodeProject(raw []byte) (*Project, error) {
	p := NewProject()
	if _, err := decode(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}

func DecodeOrder(raw []byte) (*Order, error) {
	o := NewOrder()
	if _, err := decode(raw, o); err != nil {
		return nil, err
	}
	return o, nil
}

func decode(raw []byte, entity Entity) (Entity, error) {
	if err := utils.DecodeJSON(raw, entity); err != nil {
		return nil, err
	}
	if err := entity.Validate(); err != nil {
		return nil, err
	}
	return entity, nil
}
