package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/javajoker/custom-creations-api/internal/models"
)

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create returns hex identifier", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "shop", time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		order, err := models.DecodeOrder([]byte(`{"items":[{"product_id":"abc123","quantity":2}],"customer":{"name":"Jane","email":"jane@example.com"}}`))
		require.NoError(mt, err)

		id, err := store.Create(ctx, "order", order)
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(mt, err)
	})

	mt.Run("create failure is unavailable", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "shop", time.Second)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		_, err := store.Create(ctx, "product", models.DemoProducts()[0])
		require.Error(mt, err)
		assert.True(mt, errors.Is(err, ErrStoreUnavailable))
	})

	mt.Run("query converts identifiers to text", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "shop", time.Second)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.product", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "title", Value: "Carbon Fiber Wrap Kit"},
			{Key: "category", Value: "vehicle"},
			{Key: "tags", Value: bson.A{"wrap", "vehicle"}},
		}))

		docs, err := store.Query(ctx, "product", Filter{"category": "vehicle"})
		require.NoError(mt, err)
		require.Len(mt, docs, 1)
		assert.Equal(mt, oid.Hex(), docs[0][IDField])
		assert.Equal(mt, "Carbon Fiber Wrap Kit", docs[0]["title"])
		assert.Equal(mt, []interface{}{"wrap", "vehicle"}, docs[0]["tags"])
	})

	mt.Run("query with no matches returns empty slice", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "shop", time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.product", mtest.FirstBatch))

		docs, err := store.Query(ctx, "product", nil)
		require.NoError(mt, err)
		assert.NotNil(mt, docs)
		assert.Empty(mt, docs)
	})

	mt.Run("count", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "shop", time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.product", mtest.FirstBatch, bson.D{
			{Key: "n", Value: int32(3)},
		}))

		n, err := store.Count(ctx, "product", nil)
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})

	mt.Run("collections are sorted", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "shop", time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.$cmd.listCollections", mtest.FirstBatch,
			bson.D{{Key: "name", Value: "project"}, {Key: "type", Value: "collection"}},
			bson.D{{Key: "name", Value: "order"}, {Key: "type", Value: "collection"}},
		))

		names, err := store.Collections(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, []string{"order", "project"}, names)
	})

	mt.Run("ping", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "shop", time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, store.Ping(ctx))
	})

	mt.Run("invalid collection never reaches the server", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "shop", time.Second)
		_, err := store.Query(ctx, "$where", nil)
		require.Error(mt, err)
		assert.False(mt, errors.Is(err, ErrStoreUnavailable))
	})
}

func TestDisconnectLogsFailure(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	require.NoError(t, client.Disconnect(context.Background()))

	disconnect(client)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	logged, ok := entry.Data[logrus.ErrorKey].(error)
	require.True(t, ok)
	assert.ErrorIs(t, logged, mongo.ErrClientDisconnected)
}
