package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	usersCollection = "users"
	jobsCollection  = "jobs"

	connectTimeout = 10 * time.Second
)

// DB wraps the process-wide Mongo handle. It is constructed once in main and
// passed to repositories; closing it is tied to process shutdown.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes and pings the Mongo connection.
func Connect(ctx context.Context, uri, dbName string, logger *zap.Logger) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("Connected to MongoDB", zap.String("database", dbName))
	return &DB{client: client, db: client.Database(dbName)}, nil
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// EnsureIndexes creates the unique index on users.email. Registration relies
// on the store rejecting duplicates instead of a find-then-insert check.
func (d *DB) EnsureIndexes(ctx context.Context, logger *zap.Logger) error {
	_, err := d.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	logger.Info("Database indexes ensured")
	return nil
}
