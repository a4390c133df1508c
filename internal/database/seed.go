// internal/database/seed.go
package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/custom-creations-api/internal/models"
)

type SeedResult struct {
	ProductsInserted int `json:"products_inserted"`
	ProjectsInserted int `json:"projects_inserted"`
}

// Seed fills the product and project collections with the demo catalog, each
// only if it is empty. Existing documents are never touched. The count and
// the inserts are not atomic, so concurrent callers may both insert.
func Seed(ctx context.Context, store Store) (SeedResult, error) {
	var result SeedResult

	products := models.DemoProducts()
	entities := make([]models.Entity, len(products))
	for i, p := range products {
		entities[i] = p
	}
	n, err := seedCollection(ctx, store, models.KindProduct.Collection(), entities)
	if err != nil {
		return result, err
	}
	result.ProductsInserted = n

	projects := models.DemoProjects()
	entities = make([]models.Entity, len(projects))
	for i, p := range projects {
		entities[i] = p
	}
	n, err = seedCollection(ctx, store, models.KindProject.Collection(), entities)
	if err != nil {
		return result, err
	}
	result.ProjectsInserted = n

	return result, nil
}

func seedCollection(ctx context.Context, store Store, collection string, entities []models.Entity) (int, error) {
	count, err := store.Count(ctx, collection, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	if count > 0 {
		return 0, nil
	}

	for i, entity := range entities {
		if err := entity.Validate(); err != nil {
			return i, fmt.Errorf("invalid demo %s: %w", collection, err)
		}
		if _, err := store.Create(ctx, collection, entity); err != nil {
			return i, fmt.Errorf("failed to seed %s: %w", collection, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"collection": collection,
		"inserted":   len(entities),
	}).Info("Seeded demo data")
	return len(entities), nil
}
