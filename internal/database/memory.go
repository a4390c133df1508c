// internal/database/memory.go
package database

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store selected with a memory:// URL. Documents
// are held in their JSON form, so values compare as they would after a round
// trip through a real document database.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (s *MemoryStore) Create(ctx context.Context, collection string, document interface{}) (string, error) {
	if err := validateCollection(collection); err != nil {
		return "", err
	}
	doc, err := toDocument(document)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	doc[IDField] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], doc)
	return id, nil
}

func (s *MemoryStore) Query(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	want, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []Document{}
	for _, doc := range s.collections[collection] {
		if matches(doc, want) {
			docs = append(docs, cloneDocument(doc))
		}
	}
	return docs, nil
}

func (s *MemoryStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	if err := validateCollection(collection); err != nil {
		return 0, err
	}
	want, err := normalizeFilter(filter)
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, doc := range s.collections[collection] {
		if matches(doc, want) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// normalizeFilter puts filter values in the same JSON form as stored
// documents, keeping the identifier condition.
func normalizeFilter(filter Filter) (Document, error) {
	id, hasID, fields := splitIDFilter(filter)
	want, err := toDocument(fields)
	if err != nil {
		return nil, err
	}
	if hasID {
		want[IDField] = id
	}
	return want, nil
}

func matches(doc, want Document) bool {
	for k, v := range want {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return false
		}
	}
	return true
}

func cloneDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
