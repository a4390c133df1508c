// internal/database/store.go
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// IDField is the key under which every document carries its text identifier.
const IDField = "_id"

// ErrStoreUnavailable is returned by every store operation when the backing
// database is unreachable or was never configured.
var ErrStoreUnavailable = errors.New("document store unavailable")

// Document is a schema-flexible record as handed to callers. Its IDField value
// is always a string.
type Document map[string]interface{}

// Filter selects documents whose fields equal the given values. An empty
// filter matches every document.
type Filter map[string]interface{}

// Store is the document database used by the services. Implementations are
// safe for concurrent use.
type Store interface {
	// Create inserts document and returns its store-assigned identifier.
	Create(ctx context.Context, collection string, document interface{}) (string, error)
	Query(ctx context.Context, collection string, filter Filter) ([]Document, error)
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

var collectionName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

func validateCollection(name string) error {
	if !collectionName.MatchString(name) {
		return fmt.Errorf("invalid collection name %q", name)
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

// toDocument converts any JSON-encodable value into a Document, dropping a
// caller-supplied identifier.
func toDocument(v interface{}) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("document must encode to a JSON object: %w", err)
	}
	if doc == nil {
		return nil, errors.New("document must not be null")
	}
	delete(doc, IDField)
	return doc, nil
}

// splitIDFilter separates an identifier condition from the field conditions.
func splitIDFilter(filter Filter) (id string, hasID bool, fields Filter) {
	fields = Filter{}
	for k, v := range filter {
		if k == IDField {
			id, _ = v.(string)
			hasID = true
			continue
		}
		fields[k] = v
	}
	return id, hasID, fields
}
