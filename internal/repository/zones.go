package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"SensorGrid.mongoDB/internal/models"
)

// ZoneRepository is the store accessor for the zones collection. Find
// methods return (nil, nil) when no document matches. UpdateByID refreshes
// the updatedAt timestamp.
type ZoneRepository interface {
	List(ctx context.Context) ([]models.Zone, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Zone, error)
	FindByName(ctx context.Context, name string) (*models.Zone, error)
	Insert(ctx context.Context, zone *models.Zone) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Zone, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// MongoZoneRepository implements ZoneRepository over MongoDB.
type MongoZoneRepository struct {
	collection *mongo.Collection
}

func NewMongoZoneRepository(store *Store) *MongoZoneRepository {
	return &MongoZoneRepository{collection: store.db.Collection(zonesCollection)}
}

func (r *MongoZoneRepository) List(ctx context.Context) ([]models.Zone, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing zones: %w", err)
	}
	zones := []models.Zone{}
	if err := cursor.All(ctx, &zones); err != nil {
		return nil, fmt.Errorf("decoding zones: %w", err)
	}
	return zones, nil
}

func (r *MongoZoneRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Zone, error) {
	var zone models.Zone
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&zone)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding zone %s: %w", id.Hex(), err)
	}
	return &zone, nil
}

func (r *MongoZoneRepository) FindByName(ctx context.Context, name string) (*models.Zone, error) {
	var zone models.Zone
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&zone)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding zone by name: %w", err)
	}
	return &zone, nil
}

func (r *MongoZoneRepository) Insert(ctx context.Context, zone *models.Zone) error {
	if zone.ID.IsZero() {
		zone.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, zone); err != nil {
		return fmt.Errorf("inserting zone: %w", err)
	}
	return nil
}

func (r *MongoZoneRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Zone, error) {
	withStamp := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range set {
		withStamp[k] = v
	}

	var zone models.Zone
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": withStamp},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&zone)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("updating zone %s: %w", id.Hex(), err)
	}
	return &zone, nil
}

func (r *MongoZoneRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("deleting zone %s: %w", id.Hex(), err)
	}
	return result.DeletedCount > 0, nil
}
