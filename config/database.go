package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	defaultMongoURI = "mongodb://localhost:27017"
	defaultDatabase = "expense-tracker"
)

// ConnectDB opens a MongoDB client from MONGODB_URI and verifies the
// connection with a ping.
func ConnectDB() (*mongo.Client, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = defaultMongoURI
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}

// ExpenseCollection returns the expenses collection of the configured
// database (MONGODB_DB, default expense-tracker).
func ExpenseCollection(client *mongo.Client) *mongo.Collection {
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = defaultDatabase
	}
	return client.Database(dbName).Collection("expenses")
}

// EnsureIndexes creates the query indexes on the expenses collection.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
