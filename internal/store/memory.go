package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store used by tests and local tooling. It
// keeps documents as decoded bson maps and mirrors the equality-filter,
// sort and upsert semantics the services rely on.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*MemoryCollection
	failErr     error
}

// NewMemory returns an empty MemoryStore.
func NewMemory() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*MemoryCollection)}
}

func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		col = &MemoryCollection{store: s}
		s.collections[name] = col
	}
	return col
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failErr
}

// FailWith makes every subsequent operation on every collection return err.
// Pass nil to restore normal behavior. Used to simulate backend outages.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

func (s *MemoryStore) failure() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failErr
}

// MemoryCollection holds documents for one collection name.
type MemoryCollection struct {
	mu    sync.RWMutex
	store *MemoryStore
	docs  []bson.M
}

func (c *MemoryCollection) Find(ctx context.Context, filter bson.M, opts FindOptions, out interface{}) error {
	if err := c.store.failure(); err != nil {
		return err
	}
	c.mu.RLock()
	matched := c.matchLocked(filter)
	c.mu.RUnlock()

	if len(opts.Sort) > 0 {
		sortDocs(matched, opts.Sort)
	}
	if opts.Skip > 0 {
		if opts.Skip >= int64(len(matched)) {
			matched = nil
		} else {
			matched = matched[opts.Skip:]
		}
	}
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return decodeSlice(matched, out)
}

func (c *MemoryCollection) FindOne(ctx context.Context, filter bson.M, out interface{}) error {
	if err := c.store.failure(); err != nil {
		return err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, doc := range c.docs {
		if matches(doc, filter) {
			return decodeDoc(doc, out)
		}
	}
	return ErrNotFound
}

func (c *MemoryCollection) FindByID(ctx context.Context, id primitive.ObjectID, out interface{}) error {
	return c.FindOne(ctx, bson.M{"_id": id}, out)
}

func (c *MemoryCollection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	if err := c.store.failure(); err != nil {
		return primitive.NilObjectID, err
	}
	m, err := toDoc(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := ensureID(m)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, m)
	return id, nil
}

func (c *MemoryCollection) ReplaceOne(ctx context.Context, filter bson.M, doc interface{}, upsert bool) error {
	if err := c.store.failure(); err != nil {
		return err
	}
	m, err := toDoc(doc)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.docs {
		if matches(existing, filter) {
			m["_id"] = existing["_id"]
			c.docs[i] = m
			return nil
		}
	}
	if upsert {
		ensureID(m)
		c.docs = append(c.docs, m)
	}
	return nil
}

func (c *MemoryCollection) ReplaceByID(ctx context.Context, id primitive.ObjectID, doc interface{}) error {
	if err := c.store.failure(); err != nil {
		return err
	}
	m, err := toDoc(doc)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.docs {
		if equalValues(existing["_id"], id) {
			m["_id"] = id
			c.docs[i] = m
			return nil
		}
	}
	return ErrNotFound
}

func (c *MemoryCollection) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if err := c.store.failure(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.docs {
		if equalValues(existing["_id"], id) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (c *MemoryCollection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	if err := c.store.failure(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.docs[:0]
	var removed int64
	for _, doc := range c.docs {
		if matches(doc, filter) {
			removed++
			continue
		}
		kept = append(kept, doc)
	}
	c.docs = kept
	return removed, nil
}

func (c *MemoryCollection) Count(ctx context.Context, filter bson.M) (int64, error) {
	if err := c.store.failure(); err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.matchLocked(filter))), nil
}

func (c *MemoryCollection) matchLocked(filter bson.M) []bson.M {
	matched := make([]bson.M, 0, len(c.docs))
	for _, doc := range c.docs {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}
	return matched
}

func toDoc(v interface{}) (bson.M, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return m, nil
}

func ensureID(m bson.M) primitive.ObjectID {
	if raw, ok := m["_id"]; ok {
		if id, ok := raw.(primitive.ObjectID); ok && !id.IsZero() {
			return id
		}
	}
	id := primitive.NewObjectID()
	m["_id"] = id
	return id
}

func decodeDoc(doc bson.M, out interface{}) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(data, out)
}

func decodeSlice(docs []bson.M, out interface{}) error {
	ptr := reflect.ValueOf(out)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("out must be a pointer to a slice, got %T", out)
	}
	sliceVal := reflect.MakeSlice(ptr.Elem().Type(), 0, len(docs))
	elemType := ptr.Elem().Type().Elem()
	for _, doc := range docs {
		elem := reflect.New(elemType)
		if err := decodeDoc(doc, elem.Interface()); err != nil {
			return err
		}
		sliceVal = reflect.Append(sliceVal, elem.Elem())
	}
	ptr.Elem().Set(sliceVal)
	return nil
}

func matches(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		if !equalValues(doc[key], want) {
			return false
		}
	}
	return true
}

func equalValues(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
		return false
	}
	if aid, ok := a.(primitive.ObjectID); ok {
		if bid, ok := b.(primitive.ObjectID); ok {
			return aid == bid
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case primitive.DateTime:
		return float64(n), true
	default:
		return 0, false
	}
}

func sortDocs(docs []bson.M, keys bson.D) {
	sort.SliceStable(docs, func(i, j int) bool {
		for _, key := range keys {
			order := 1
			if n, ok := toFloat(key.Value); ok && n < 0 {
				order = -1
			}
			cmp := compareValues(docs[i][key.Key], docs[j][key.Key])
			if cmp == 0 {
				continue
			}
			if order < 0 {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func compareValues(a, b interface{}) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.Compare(as, bs)
	}
	if aid, ok := a.(primitive.ObjectID); ok {
		if bid, ok := b.(primitive.ObjectID); ok {
			return strings.Compare(aid.Hex(), bid.Hex())
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
