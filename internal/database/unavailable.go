// internal/database/unavailable.go
package database

import (
	"context"
	"fmt"
)

// UnavailableStore stands in for a database that could not be reached at
// startup. Every data operation fails with ErrStoreUnavailable.
type UnavailableStore struct {
	reason string
}

func NewUnavailableStore(reason string) *UnavailableStore {
	return &UnavailableStore{reason: reason}
}

func (s *UnavailableStore) Reason() string {
	return s.reason
}

func (s *UnavailableStore) err() error {
	return fmt.Errorf("%w: %s", ErrStoreUnavailable, s.reason)
}

func (s *UnavailableStore) Create(ctx context.Context, collection string, document interface{}) (string, error) {
	return "", s.err()
}

func (s *UnavailableStore) Query(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	return nil, s.err()
}

func (s *UnavailableStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	return 0, s.err()
}

func (s *UnavailableStore) Collections(ctx context.Context) ([]string, error) {
	return nil, s.err()
}

func (s *UnavailableStore) Ping(ctx context.Context) error {
	return s.err()
}

func (s *UnavailableStore) Close(ctx context.Context) error {
	return nil
}
