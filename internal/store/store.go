// Package store narrows MongoDB collection access to the handful of
// operations the services actually use: equality-filtered finds, inserts,
// replaces, deletes and counts. The Mongo implementation is a thin wrapper;
// the memory implementation backs the test suite.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when an id-addressed operation matches nothing.
var ErrNotFound = errors.New("document not found")

// FindOptions carries sort and pagination for Find.
type FindOptions struct {
	Sort  bson.D
	Limit int64
	Skip  int64
}

// Collection is the access contract for one collection. Filters are flat
// equality documents; out parameters follow the mongo-driver convention
// (pointer to slice for Find, pointer to struct for single reads).
type Collection interface {
	Find(ctx context.Context, filter bson.M, opts FindOptions, out interface{}) error
	FindOne(ctx context.Context, filter bson.M, out interface{}) error
	FindByID(ctx context.Context, id primitive.ObjectID, out interface{}) error
	InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error)
	ReplaceOne(ctx context.Context, filter bson.M, doc interface{}, upsert bool) error
	ReplaceByID(ctx context.Context, id primitive.ObjectID, doc interface{}) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, filter bson.M) (int64, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// Store hands out collections and reports backend health.
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
}
