package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store used by unit tests. It keeps documents in
// insertion order (the collection's natural order) and understands the
// equality and $or filters the aggregators issue.
type Memory struct {
	mu          sync.Mutex
	collections map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]bson.M)}
}

func (m *Memory) FindOne(_ context.Context, collection string, filter bson.M, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if matchFilter(doc, filter) {
			return decodeDocument(doc, out)
		}
	}
	return ErrNotFound
}

func (m *Memory) FindAll(_ context.Context, collection string, filter bson.M, out interface{}, opts ...FindOption) error {
	cfg := findConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	m.mu.Lock()
	matches := make([]bson.M, 0)
	for _, doc := range m.collections[collection] {
		if matchFilter(doc, filter) {
			matches = append(matches, doc)
		}
	}
	m.mu.Unlock()

	if cfg.skip > 0 {
		if cfg.skip >= int64(len(matches)) {
			matches = nil
		} else {
			matches = matches[cfg.skip:]
		}
	}
	if cfg.limit > 0 && int64(len(matches)) > cfg.limit {
		matches = matches[:cfg.limit]
	}

	return decodeDocuments(matches, out)
}

func (m *Memory) InsertOne(_ context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	normalized, err := toDocument(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := normalized["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		normalized["_id"] = id
	}

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], normalized)
	m.mu.Unlock()
	return id, nil
}

func (m *Memory) UpdateOne(_ context.Context, collection string, filter bson.M, update bson.M, upsert bool) (UpdateResult, error) {
	set, err := toDocument(update["$set"])
	if err != nil {
		return UpdateResult{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if matchFilter(doc, filter) {
			for key, value := range set {
				doc[key] = value
			}
			return UpdateResult{MatchedCount: 1}, nil
		}
	}

	if !upsert {
		return UpdateResult{}, nil
	}

	inserted := bson.M{}
	for key, value := range filter {
		if key != "$or" {
			inserted[key] = value
		}
	}
	for key, value := range set {
		inserted[key] = value
	}
	id := primitive.NewObjectID()
	inserted["_id"] = id
	m.collections[collection] = append(m.collections[collection], inserted)
	return UpdateResult{UpsertedID: id}, nil
}

func (m *Memory) DeleteOne(_ context.Context, collection string, filter bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := m.collections[collection]
	for i, doc := range docs {
		if matchFilter(doc, filter) {
			m.collections[collection] = append(docs[:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func matchFilter(doc bson.M, filter bson.M) bool {
	for key, expected := range filter {
		if key == "$or" {
			if !matchAny(doc, expected) {
				return false
			}
			continue
		}
		if !looseEqual(doc[key], expected) {
			return false
		}
	}
	return true
}

func matchAny(doc bson.M, branches interface{}) bool {
	switch typed := branches.(type) {
	case []bson.M:
		for _, branch := range typed {
			if matchFilter(doc, branch) {
				return true
			}
		}
	case bson.A:
		for _, branch := range typed {
			if sub, ok := branch.(bson.M); ok && matchFilter(doc, sub) {
				return true
			}
		}
	}
	return false
}

// looseEqual compares values the way the aggregators expect: ObjectIds match
// their hex string form, so cross-typed foreign keys still join.
func looseEqual(actual, expected interface{}) bool {
	if actual == nil || expected == nil {
		return actual == expected
	}
	if hexOf(actual) != "" || hexOf(expected) != "" {
		return asComparableString(actual) == asComparableString(expected)
	}
	return reflect.DeepEqual(actual, expected)
}

func hexOf(value interface{}) string {
	if id, ok := value.(primitive.ObjectID); ok {
		return id.Hex()
	}
	return ""
}

func asComparableString(value interface{}) string {
	switch typed := value.(type) {
	case primitive.ObjectID:
		return typed.Hex()
	case string:
		return typed
	default:
		return fmt.Sprintf("%v", typed)
	}
}

func toDocument(value interface{}) (bson.M, error) {
	if value == nil {
		return bson.M{}, nil
	}
	raw, err := bson.Marshal(value)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeDocument(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func decodeDocuments(docs []bson.M, out interface{}) error {
	slicePtr := reflect.ValueOf(out)
	if slicePtr.Kind() != reflect.Ptr || slicePtr.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("FindAll out must be a pointer to a slice, got %T", out)
	}

	sliceVal := slicePtr.Elem()
	elemType := sliceVal.Type().Elem()
	result := reflect.MakeSlice(sliceVal.Type(), 0, len(docs))
	for _, doc := range docs {
		elem := reflect.New(elemType)
		if err := decodeDocument(doc, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	sliceVal.Set(result)
	return nil
}
