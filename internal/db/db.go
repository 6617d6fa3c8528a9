package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the application.
const (
	ColContent      = "content"
	ColStudents     = "students"
	ColServices     = "services"
	ColTestimonials = "testimonials"
	ColTeam         = "team"
	ColPartners     = "partners"
	ColImages       = "images"
	ColUsers        = "users"
)

// Client is the global MongoDB client, set by Init.
var Client *mongo.Client

// Database is the global database handle, set by Init.
var Database *mongo.Database

// Init connects to MongoDB and verifies the connection with a ping.
// databaseName falls back to "haneducation" when empty.
func Init(ctx context.Context, uri, databaseName string) error {
	name := strings.TrimSpace(databaseName)
	if name == "" {
		name = "haneducation"
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}

	Client = client
	Database = client.Database(name)
	return nil
}

// Close disconnects the global client.
func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the application relies on. The unique
// (section, language) index on content backs the replace-on-save upsert: a
// concurrent double save can not leave two records behind.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	content := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "section", Value: 1}, {Key: "language", Value: 1}},
			Options: options.Index().SetName("section_language_unique").SetUnique(true),
		},
	}
	if _, err := database.Collection(ColContent).Indexes().CreateMany(ctx, content); err != nil {
		return fmt.Errorf("create content indexes: %w", err)
	}

	users := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("username_unique").SetUnique(true),
		},
	}
	if _, err := database.Collection(ColUsers).Indexes().CreateMany(ctx, users); err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}

	students := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("createdAt_desc"),
		},
	}
	if _, err := database.Collection(ColStudents).Indexes().CreateMany(ctx, students); err != nil {
		return fmt.Errorf("create student indexes: %w", err)
	}

	return nil
}
