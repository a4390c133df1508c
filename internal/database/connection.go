// internal/database/connection.go
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/custom-creations-api/internal/config"
)

const defaultCloseTimeout = 10 * time.Second

var errNotConfigured = errors.New("DATABASE_URL and DATABASE_NAME must both be set")

// ConnectionError reports a failure to establish the store connection at
// startup.
type ConnectionError struct {
	Backend config.Backend
	URL     string
	Err     error
}

func (e *ConnectionError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("database connection failed: %v", e.Err)
	}
	return fmt.Sprintf("database connection to %s failed: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Open connects to the store selected by the DATABASE_URL scheme. It never
// returns a nil Store: on failure it returns an unavailable store alongside a
// *ConnectionError so the caller can keep serving requests that do not need
// the database.
func Open(ctx context.Context, cfg config.DatabaseConfig) (Store, error) {
	if !cfg.Configured() {
		return NewUnavailableStore("database not configured"), &ConnectionError{Err: errNotConfigured}
	}

	var (
		store Store
		err   error
	)
	switch cfg.Backend() {
	case config.BackendMongo:
		store, err = OpenMongo(ctx, cfg)
	case config.BackendPostgres:
		store, err = OpenPostgres(ctx, cfg)
	case config.BackendMemory:
		store = NewMemoryStore()
	default:
		err = fmt.Errorf("unsupported database URL scheme")
	}

	if err != nil {
		connErr := &ConnectionError{Backend: cfg.Backend(), URL: cfg.RedactedURL(), Err: err}
		return NewUnavailableStore(connErr.Error()), connErr
	}

	logrus.WithFields(logrus.Fields{
		"backend":  cfg.Backend(),
		"url":      cfg.RedactedURL(),
		"database": cfg.Name,
	}).Info("Database connection established successfully")
	return store, nil
}

// Available reports whether store is backed by a live connection attempt.
func Available(store Store) bool {
	if store == nil {
		return false
	}
	_, unavailable := store.(*UnavailableStore)
	return !unavailable
}

func Close(store Store) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultCloseTimeout)
	defer cancel()

	if err := store.Close(ctx); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
		return
	}
	if Available(store) {
		logrus.Info("Database connection closed successfully")
	}
}
