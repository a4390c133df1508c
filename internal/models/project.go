// internal/models/project.go
package models

import (
	"github.com/javajoker/custom-creations-api/internal/utils"
)

// Project is a portfolio entry showcasing work done for a client.
type Project struct {
	Title     string   `json:"title" bson:"title" validate:"required,notblank"`
	Summary   *string  `json:"summary" bson:"summary"`
	Service   Category `json:"service" bson:"service" validate:"required,oneof=clothing vehicle gadgets"`
	HeroImage *string  `json:"hero_image" bson:"hero_image"`
	Gallery   []string `json:"gallery" bson:"gallery"`
	Client    *string  `json:"client" bson:"client"`
}

func NewProject() *Project {
	return &Project{Gallery: []string{}}
}

func (p *Project) Kind() EntityKind { return KindProject }

func (p *Project) Validate() error {
	if p.Gallery == nil {
		p.Gallery = []string{}
	}
	return utils.ValidateStruct(p)
}
