package memory

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/incident-intake/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DocumentStore - хранилище документов в памяти с семантикой Mongo для равенства и уникальных индексов.
// Документы проходят через bson, поэтому хранятся в том же виде, что и в Mongo.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
	unique      map[string][][]string
	logger      *zap.Logger
}

var _ repository.DocumentStore = (*DocumentStore)(nil)

func NewDocumentStore(logger *zap.Logger) *DocumentStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentStore{
		collections: make(map[string][]bson.M),
		unique:      make(map[string][][]string),
		logger:      logger,
	}
}

// EnsureUnique регистрирует составной уникальный индекс
func (s *DocumentStore) EnsureUnique(collection string, fields ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unique[collection] = append(s.unique[collection], fields)
}

func (s *DocumentStore) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		if out != nil {
			if err := decode(doc, out); err != nil {
				return false, err
			}
		}
		return true, nil
	}
	return false, nil
}

func (s *DocumentStore) InsertOne(ctx context.Context, collection string, doc interface{}) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := toDocument(doc)
	if err != nil {
		return nil, err
	}
	if _, ok := m["_id"]; !ok {
		m["_id"] = primitive.NewObjectID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.collections[collection] {
		if equal(existing["_id"], m["_id"]) {
			return nil, repository.ErrDuplicateKey
		}
		for _, fields := range s.unique[collection] {
			if sameKey(existing, m, fields) {
				s.logger.Debug("Unique index violation",
					zap.String("collection", collection),
					zap.Strings("fields", fields))
				return nil, repository.ErrDuplicateKey
			}
		}
	}

	s.collections[collection] = append(s.collections[collection], m)
	return m["_id"], nil
}

func (s *DocumentStore) FindLast(ctx context.Context, collection, sortField string, out interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var best bson.M
	for _, doc := range s.collections[collection] {
		v, ok := doc[sortField]
		if !ok {
			continue
		}
		if best == nil || less(best[sortField], v) {
			best = doc
		}
	}
	if best == nil {
		return false, nil
	}
	if out != nil {
		if err := decode(best, out); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (s *DocumentStore) Health(ctx context.Context) error {
	return ctx.Err()
}

// Documents возвращает копию документов коллекции в порядке вставки
func (s *DocumentStore) Documents(collection string) []bson.M {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]bson.M, 0, len(s.collections[collection]))
	for _, d := range s.collections[collection] {
		cp := make(bson.M, len(d))
		for k, v := range d {
			cp[k] = v
		}
		docs = append(docs, cp)
	}
	return docs
}

// Count - количество документов в коллекции
func (s *DocumentStore) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

func toDocument(doc interface{}) (bson.M, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return m, nil
}

func decode(doc bson.M, out interface{}) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := bson.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !equal(got, want) {
			return false
		}
	}
	return true
}

func sameKey(a, b bson.M, fields []string) bool {
	for _, f := range fields {
		av, aok := a[f]
		bv, bok := b[f]
		if !aok || !bok || !equal(av, bv) {
			return false
		}
	}
	return true
}

// equal сравнивает числа разных типов как Mongo: int32(1) == int64(1) == 1.0
func equal(a, b interface{}) bool {
	af, aNum := number(a)
	bf, bNum := number(b)
	if aNum || bNum {
		return aNum && bNum && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func less(a, b interface{}) bool {
	af, aNum := number(a)
	bf, bNum := number(b)
	if aNum && bNum {
		return af < bf
	}
	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		return as < bs
	}
	return false
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}
