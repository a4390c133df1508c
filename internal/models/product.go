// internal/models/product.go
package models

import (
	"github.com/javajoker/custom-creations-api/internal/utils"
)

type Product struct {
	Title       string   `json:"title" bson:"title" validate:"required,notblank"`
	Description *string  `json:"description" bson:"description"`
	Price       *float64 `json:"price" bson:"price" validate:"required,gte=0"`
	Category    Category `json:"category" bson:"category" validate:"required,oneof=clothing vehicle gadgets"`
	ImageURL    *string  `json:"image_url" bson:"image_url"`
	Tags        []string `json:"tags" bson:"tags"`
	InStock     bool     `json:"in_stock" bson:"in_stock"`
}

// NewProduct returns a Product carrying the schema defaults.
func NewProduct() *Product {
	return &Product{Tags: []string{}, InStock: true}
}

func (p *Product) Kind() EntityKind { return KindProduct }

func (p *Product) Validate() error {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return utils.ValidateStruct(p)
}
