// internal/database/mongo.go
package database

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/javajoker/custom-creations-api/internal/config"
)

type MongoStore struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// OpenMongo connects to MongoDB and verifies the connection with a ping.
func OpenMongo(ctx context.Context, cfg config.DatabaseConfig) (*MongoStore, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(cfg.ConnectTimeoutDuration()).
		SetServerSelectionTimeout(cfg.ConnectTimeoutDuration()).
		SetMaxPoolSize(uint64(cfg.MaxPoolSize))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeoutDuration())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnect(client)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return NewMongoStore(client, cfg.Name, cfg.OperationTimeoutDuration()), nil
}

func disconnect(client *mongo.Client) {
	if err := client.Disconnect(context.Background()); err != nil {
		logrus.WithError(err).Warn("Error disconnecting from mongodb")
	}
}

// NewMongoStore wraps an already connected client.
func NewMongoStore(client *mongo.Client, database string, timeout time.Duration) *MongoStore {
	return &MongoStore{
		client:  client,
		db:      client.Database(database),
		timeout: timeout,
	}
}

func (s *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *MongoStore) Create(ctx context.Context, collection string, document interface{}) (string, error) {
	if err := validateCollection(collection); err != nil {
		return "", err
	}
	document = withoutClientID(document)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return "", unavailable("insert into "+collection, err)
	}
	return IDString(res.InsertedID), nil
}

func (s *MongoStore) Query(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cursor, err := s.db.Collection(collection).Find(ctx, nativeFilter(filter))
	if err != nil {
		return nil, unavailable("find in "+collection, err)
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, unavailable("read "+collection, err)
	}

	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, fromNative(m))
	}
	return docs, nil
}

func (s *MongoStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	if err := validateCollection(collection); err != nil {
		return 0, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.db.Collection(collection).CountDocuments(ctx, nativeFilter(filter))
	if err != nil {
		return 0, unavailable("count "+collection, err)
	}
	return n, nil
}

func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, unavailable("list collections", err)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// withoutClientID drops an _id key from map documents so MongoDB generates
// the identifier. Structs never carry one.
func withoutClientID(document interface{}) interface{} {
	var m map[string]interface{}
	switch d := document.(type) {
	case Document:
		m = d
	case map[string]interface{}:
		m = d
	case bson.M:
		m = d
	default:
		return document
	}
	if _, ok := m[IDField]; !ok {
		return document
	}

	out := make(bson.M, len(m))
	for k, v := range m {
		if k != IDField {
			out[k] = v
		}
	}
	return out
}
