package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on top of a *mongo.Database.
type MongoStore struct {
	database *mongo.Database
}

// NewMongo wraps an already-connected database handle.
func NewMongo(database *mongo.Database) *MongoStore {
	return &MongoStore{database: database}
}

func (s *MongoStore) Collection(name string) Collection {
	return &mongoCollection{col: s.database.Collection(name)}
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.database.Client().Ping(ctx, nil)
}

type mongoCollection struct {
	col *mongo.Collection
}

func (c *mongoCollection) Find(ctx context.Context, filter bson.M, opts FindOptions, out interface{}) error {
	findOpts := options.Find()
	if len(opts.Sort) > 0 {
		findOpts.SetSort(opts.Sort)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}

	cursor, err := c.col.Find(ctx, filter, findOpts)
	if err != nil {
		return fmt.Errorf("find %s: %w", c.col.Name(), err)
	}
	return cursor.All(ctx, out)
}

func (c *mongoCollection) FindOne(ctx context.Context, filter bson.M, out interface{}) error {
	err := c.col.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (c *mongoCollection) FindByID(ctx context.Context, id primitive.ObjectID, out interface{}) error {
	return c.FindOne(ctx, bson.M{"_id": id}, out)
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	result, err := c.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert %s: %w", c.col.Name(), err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, nil
	}
	return id, nil
}

func (c *mongoCollection) ReplaceOne(ctx context.Context, filter bson.M, doc interface{}, upsert bool) error {
	_, err := c.col.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(upsert))
	if err != nil {
		return fmt.Errorf("replace %s: %w", c.col.Name(), err)
	}
	return nil
}

func (c *mongoCollection) ReplaceByID(ctx context.Context, id primitive.ObjectID, doc interface{}) error {
	result, err := c.col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("replace %s: %w", c.col.Name(), err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *mongoCollection) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := c.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.col.Name(), err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *mongoCollection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	result, err := c.col.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete many %s: %w", c.col.Name(), err)
	}
	return result.DeletedCount, nil
}

func (c *mongoCollection) Count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := c.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.col.Name(), err)
	}
	return count, nil
}
