package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/custom-creations-api/internal/config"
	"github.com/javajoker/custom-creations-api/internal/database"
	"github.com/javajoker/custom-creations-api/internal/utils"
)

// stubStore wraps a MemoryStore and lets tests break individual operations.
type stubStore struct {
	*database.MemoryStore
	pingErr        error
	collectionsErr error
	collections    []string
	panicOnPing    bool
}

func (s *stubStore) Ping(ctx context.Context) error {
	if s.panicOnPing {
		panic("driver exploded")
	}
	return s.pingErr
}

func (s *stubStore) Collections(ctx context.Context) ([]string, error) {
	if s.collectionsErr != nil {
		return nil, s.collectionsErr
	}
	if s.collections != nil {
		return s.collections, nil
	}
	return s.MemoryStore.Collections(ctx)
}

func TestCatalogListFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(database.NewMemoryStore())

	all, err := svc.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	_, err = svc.Seed(ctx)
	require.NoError(t, err)

	all, err = svc.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	vehicles, err := svc.ListProducts(ctx, "vehicle")
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Carbon Fiber Wrap Kit", vehicles[0]["title"])

	gadgets, err := svc.ListProjects(ctx, "gadgets")
	require.NoError(t, err)
	require.Len(t, gadgets, 1)
	assert.Equal(t, "Corporate Gift Set", gadgets[0]["title"])
}

func TestCatalogRejectsUnknownCategory(t *testing.T) {
	svc := NewCatalogService(database.NewMemoryStore())

	_, err := svc.ListProducts(context.Background(), "furniture")
	var verr *utils.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "category", verr.Fields[0].Field)

	_, err = svc.ListProjects(context.Background(), "boats")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "service", verr.Fields[0].Field)
}

func TestCatalogSeedReportsFinalCounts(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(database.NewMemoryStore())

	first, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, &SeedSummary{ProductsInserted: 3, ProjectsInserted: 3, Products: 3, Projects: 3}, first)

	second, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, &SeedSummary{Products: 3, Projects: 3}, second)
}

func TestCatalogPropagatesUnavailability(t *testing.T) {
	svc := NewCatalogService(database.NewUnavailableStore("down"))

	_, err := svc.ListProducts(context.Background(), "")
	assert.True(t, errors.Is(err, database.ErrStoreUnavailable))

	_, err = svc.Seed(context.Background())
	assert.True(t, errors.Is(err, database.ErrStoreUnavailable))
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	svc := NewOrderService(store)

	receipt, err := svc.CreateOrder(ctx, []byte(`{"items":[{"product_id":"abc123","quantity":2}],"customer":{"name":"Jane","email":"jane@example.com"}}`))
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, "received", receipt.Status)

	docs, err := store.Query(ctx, "order", database.Filter{database.IDField: receipt.ID})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "pending", docs[0]["status"])
	assert.Equal(t, []interface{}{map[string]interface{}{"product_id": "abc123", "quantity": float64(2)}}, docs[0]["items"])
}

func TestCreateOrderValidationAndUnavailability(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()

	_, err := NewOrderService(store).CreateOrder(ctx, []byte(`{"items":[],"customer":{"name":"Jane","email":"jane@example.com"}}`))
	var verr *utils.ValidationError
	require.True(t, errors.As(err, &verr))

	n, err := store.Count(ctx, "order", nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = NewOrderService(database.NewUnavailableStore("down")).CreateOrder(ctx, []byte(`{"items":[{"product_id":"a"}],"customer":{"name":"Jane","email":"jane@example.com"}}`))
	assert.True(t, errors.Is(err, database.ErrStoreUnavailable))
}

func TestDiagnosticsUnavailableStore(t *testing.T) {
	svc := NewDiagnosticsService(database.NewUnavailableStore("down"), config.DatabaseConfig{URL: "mongodb://db:27017"})

	report := svc.Report(context.Background())
	assert.Equal(t, DiagnosticsReport{
		Backend:          BackendRunning,
		Database:         DatabaseNotAvailable,
		DatabaseURL:      EnvSet,
		DatabaseName:     EnvNotSet,
		ConnectionStatus: ConnectionNotConnected,
		Collections:      []string{},
	}, report)
}

func TestDiagnosticsWorkingStore(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{MemoryStore: database.NewMemoryStore()}
	_, err := database.Seed(ctx, store)
	require.NoError(t, err)

	report := NewDiagnosticsService(store, config.DatabaseConfig{URL: "memory://", Name: "shop"}).Report(ctx)
	assert.Equal(t, DatabaseWorking, report.Database)
	assert.Equal(t, ConnectionConnected, report.ConnectionStatus)
	assert.Equal(t, []string{"product", "project"}, report.Collections)
	assert.Equal(t, EnvSet, report.DatabaseName)
}

func TestDiagnosticsCapsCollections(t *testing.T) {
	names := make([]string, 15)
	for i := range names {
		names[i] = fmt.Sprintf("c%02d", i)
	}
	store := &stubStore{MemoryStore: database.NewMemoryStore(), collections: names}

	report := NewDiagnosticsService(store, config.DatabaseConfig{}).Report(context.Background())
	assert.Len(t, report.Collections, 10)
}

func TestDiagnosticsDowngradesFailures(t *testing.T) {
	ctx := context.Background()
	long := errors.New("server selection error: context deadline exceeded, current topology: { Type: Unknown }")

	report := NewDiagnosticsService(&stubStore{MemoryStore: database.NewMemoryStore(), pingErr: long}, config.DatabaseConfig{}).Report(ctx)
	assert.Equal(t, ConnectionNotConnected, report.ConnectionStatus)
	assert.Equal(t, DatabaseNotAvailable+": "+long.Error()[:50], report.Database)

	report = NewDiagnosticsService(&stubStore{MemoryStore: database.NewMemoryStore(), collectionsErr: errors.New("unauthorized")}, config.DatabaseConfig{}).Report(ctx)
	assert.Equal(t, ConnectionConnected, report.ConnectionStatus)
	assert.Equal(t, "Connected but Error: unauthorized", report.Database)

	report = NewDiagnosticsService(&stubStore{MemoryStore: database.NewMemoryStore(), panicOnPing: true}, config.DatabaseConfig{}).Report(ctx)
	assert.Equal(t, "Error: driver exploded", report.Database)
}
