// internal/database/postgres.go
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/custom-creations-api/internal/config"
)

// PostgresStore keeps each collection in its own table of JSONB documents,
// inside a schema named after the configured database name.
type PostgresStore struct {
	db      *gorm.DB
	schema  string
	timeout time.Duration
	tables  sync.Map
}

// undefinedTable is the SQLSTATE for a missing relation. Tables are created on
// first write, so reads treat it as an empty collection.
const undefinedTable = "42P01"

type documentRow struct {
	ID   string
	Body string
}

func OpenPostgres(ctx context.Context, cfg config.DatabaseConfig) (*PostgresStore, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
		// Connectivity is checked by PingContext below, under the connect timeout.
		DisableAutomaticPing: true,
	}

	db, err := gorm.Open(postgres.Open(postgresDSN(cfg)), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxPoolSize)
	sqlDB.SetMaxIdleConns(cfg.MaxPoolSize)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeoutDuration())
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	store := NewPostgresStore(db, cfg.Name, cfg.OperationTimeoutDuration())
	if err := db.WithContext(pingCtx).Exec("CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(cfg.Name)).Error; err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return store, nil
}

// postgresDSN adds connect_timeout to a URL-form DSN unless it sets one.
func postgresDSN(cfg config.DatabaseConfig) string {
	if cfg.ConnectTimeout <= 0 {
		return cfg.URL
	}
	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme == "" {
		return cfg.URL
	}
	q := u.Query()
	if q.Get("connect_timeout") == "" {
		q.Set("connect_timeout", strconv.Itoa(cfg.ConnectTimeout))
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func NewPostgresStore(db *gorm.DB, schema string, timeout time.Duration) *PostgresStore {
	return &PostgresStore{db: db, schema: schema, timeout: timeout}
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}

// table returns the schema-qualified, quoted table name for a collection.
// Quoting matters: "order" is a reserved word.
func (s *PostgresStore) table(collection string) string {
	return pq.QuoteIdentifier(s.schema) + "." + pq.QuoteIdentifier(collection)
}

func (s *PostgresStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *PostgresStore) ensureTable(ctx context.Context, collection string) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	if _, ok := s.tables.Load(collection); ok {
		return nil
	}

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id uuid PRIMARY KEY,
		body jsonb NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`, s.table(collection))
	if err := s.db.WithContext(ctx).Exec(ddl).Error; err != nil {
		return unavailable("create table "+collection, err)
	}
	s.tables.Store(collection, struct{}{})
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, collection string, document interface{}) (string, error) {
	doc, err := toDocument(document)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.ensureTable(ctx, collection); err != nil {
		return "", err
	}

	id := uuid.New()
	query := fmt.Sprintf("INSERT INTO %s (id, body) VALUES (?, ?::jsonb)", s.table(collection))
	if err := s.db.WithContext(ctx).Exec(query, id, string(body)).Error; err != nil {
		return "", unavailable("insert into "+collection, err)
	}
	return id.String(), nil
}

func (s *PostgresStore) Query(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	where, args, ok, err := s.where(filter)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Document{}, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var rows []documentRow
	query := fmt.Sprintf("SELECT id::text AS id, body::text AS body FROM %s WHERE %s ORDER BY created_at, id", s.table(collection), where)
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		if isUndefinedTable(err) {
			return []Document{}, nil
		}
		return nil, unavailable("select from "+collection, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		var doc Document
		if err := json.Unmarshal([]byte(row.Body), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", row.ID, err)
		}
		doc[IDField] = row.ID
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *PostgresStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	if err := validateCollection(collection); err != nil {
		return 0, err
	}
	where, args, ok, err := s.where(filter)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var n int64
	query := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", s.table(collection), where)
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&n).Error; err != nil {
		if isUndefinedTable(err) {
			return 0, nil
		}
		return 0, unavailable("count "+collection, err)
	}
	return n, nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTable
}

// where builds the JSONB containment clause for filter. ok is false when the
// filter names an identifier that cannot exist, so nothing can match.
func (s *PostgresStore) where(filter Filter) (clause string, args []interface{}, ok bool, err error) {
	id, hasID, fields := splitIDFilter(filter)

	contains, err := json.Marshal(fields)
	if err != nil {
		return "", nil, false, fmt.Errorf("failed to encode filter: %w", err)
	}
	clause = "body @> ?::jsonb"
	args = []interface{}{string(contains)}

	if hasID {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return "", nil, false, nil
		}
		clause += " AND id = ?"
		args = append(args, parsed)
	}
	return clause, args, true, nil
}

func (s *PostgresStore) Collections(ctx context.Context) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var names []string
	err := s.db.WithContext(ctx).
		Raw("SELECT table_name FROM information_schema.tables WHERE table_schema = ? ORDER BY table_name", s.schema).
		Scan(&names).Error
	if err != nil {
		return nil, unavailable("list collections", err)
	}
	return names, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return unavailable("ping", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func (s *PostgresStore) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
