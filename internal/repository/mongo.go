// Package repository provides the per-entity accessors over the MongoDB
// document store: one collection per entity, one repository interface per
// entity, a Mongo implementation for production and an in-memory
// implementation for tests and local development.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per entity.
const (
	usersCollection    = "users"
	zonesCollection    = "zones"
	devicesCollection  = "devices"
	sensorsCollection  = "sensors"
	readingsCollection = "readings"
)

// ErrDuplicateKey is returned by the in-memory repositories when a unique
// key would be violated, mirroring the Mongo unique index.
var ErrDuplicateKey = errors.New("duplicate key")

// IsDuplicateKey reports whether err came from a uniqueness guard, either
// a Mongo unique index or the in-memory equivalent.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey) || mongo.IsDuplicateKeyError(err)
}

// Store wraps the Mongo client and database handle shared by the entity
// repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to MongoDB and verifies the connection with a ping.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	return &Store{client: client, db: client.Database(database)}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes backing the uniqueness
// pre-checks in the service layer. The index is the authoritative guard
// under concurrency; the service-level pre-checks only exist to return a
// friendly message first.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for _, ix := range []struct {
		collection string
		field      string
	}{
		{usersCollection, "email"},
		{zonesCollection, "name"},
		{devicesCollection, "serialNumber"},
	} {
		_, err := s.db.Collection(ix.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: ix.field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("creating unique index on %s.%s: %w", ix.collection, ix.field, err)
		}
	}
	return nil
}
