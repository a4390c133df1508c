package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPopulatesEmptyCollections(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	result, err := Seed(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{ProductsInserted: 3, ProjectsInserted: 3}, result)

	docs, err := store.Query(ctx, "product", Filter{"category": "vehicle"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Carbon Fiber Wrap Kit", docs[0]["title"])
	assert.NotEmpty(t, docs[0][IDField])

	projects, err := store.Query(ctx, "project", Filter{"service": "clothing"})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Team Nova", projects[0]["client"])
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := Seed(ctx, store)
	require.NoError(t, err)
	products, _ := store.Count(ctx, "product", nil)
	projects, _ := store.Count(ctx, "project", nil)

	result, err := Seed(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, result)

	products2, _ := store.Count(ctx, "product", nil)
	projects2, _ := store.Count(ctx, "project", nil)
	assert.Equal(t, products, products2)
	assert.Equal(t, projects, projects2)
}

func TestSeedSkipsNonEmptyCollectionOnly(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Create(ctx, "product", Document{"title": "Something else entirely"})
	require.NoError(t, err)

	result, err := Seed(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ProductsInserted)
	assert.Equal(t, 3, result.ProjectsInserted)

	n, err := store.Count(ctx, "product", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSeedFailsWhenStoreUnavailable(t *testing.T) {
	_, err := Seed(context.Background(), NewUnavailableStore("connection refused"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
}
