// internal/services/catalog_service.go
package services

import (
	"context"
	"fmt"

	"github.com/javajoker/custom-creations-api/internal/database"
	"github.com/javajoker/custom-creations-api/internal/models"
	"github.com/javajoker/custom-creations-api/internal/utils"
)

type CatalogService struct {
	store database.Store
}

// SeedSummary reports what a seeding run inserted and the collection sizes
// afterwards.
type SeedSummary struct {
	ProductsInserted int   `json:"products_inserted"`
	ProjectsInserted int   `json:"projects_inserted"`
	Products         int64 `json:"products"`
	Projects         int64 `json:"projects"`
}

func NewCatalogService(store database.Store) *CatalogService {
	return &CatalogService{store: store}
}

// ListProducts returns every product, or only those in category when it is
// not empty.
func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]database.Document, error) {
	return s.list(ctx, models.KindProduct, "category", category)
}

// ListProjects returns every project, or only those for service when it is
// not empty.
func (s *CatalogService) ListProjects(ctx context.Context, service string) ([]database.Document, error) {
	return s.list(ctx, models.KindProject, "service", service)
}

func (s *CatalogService) list(ctx context.Context, kind models.EntityKind, field, value string) ([]database.Document, error) {
	filter := database.Filter{}
	if value != "" {
		if !models.Category(value).Valid() {
			return nil, utils.NewValidationError(field, "oneof", field+" must be one of: clothing, vehicle, gadgets")
		}
		filter[field] = value
	}

	docs, err := s.store.Query(ctx, kind.Collection(), filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", kind, err)
	}
	if docs == nil {
		docs = []database.Document{}
	}
	return docs, nil
}

func (s *CatalogService) Seed(ctx context.Context) (*SeedSummary, error) {
	result, err := database.Seed(ctx, s.store)
	if err != nil {
		return nil, err
	}

	products, err := s.store.Count(ctx, models.KindProduct.Collection(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	projects, err := s.store.Count(ctx, models.KindProject.Collection(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	return &SeedSummary{
		ProductsInserted: result.ProductsInserted,
		ProjectsInserted: result.ProjectsInserted,
		Products:         products,
		Projects:         projects,
	}, nil
}
