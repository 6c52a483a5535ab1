package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"SensorGrid.mongoDB/internal/models"
)

// ReadingRepository is the store accessor for the readings collection.
// Find methods return (nil, nil) when no document matches. CountBySensor
// backs the sensor-delete referential guard.
type ReadingRepository interface {
	List(ctx context.Context) ([]models.Reading, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reading, error)
	CountBySensor(ctx context.Context, sensorID primitive.ObjectID) (int64, error)
	Insert(ctx context.Context, reading *models.Reading) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Reading, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// MongoReadingRepository implements ReadingRepository over MongoDB.
type MongoReadingRepository struct {
	collection *mongo.Collection
}

func NewMongoReadingRepository(store *Store) *MongoReadingRepository {
	return &MongoReadingRepository{collection: store.db.Collection(readingsCollection)}
}

func (r *MongoReadingRepository) List(ctx context.Context) ([]models.Reading, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing readings: %w", err)
	}
	readings := []models.Reading{}
	if err := cursor.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("decoding readings: %w", err)
	}
	return readings, nil
}

func (r *MongoReadingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reading, error) {
	var reading models.Reading
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reading)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding reading %s: %w", id.Hex(), err)
	}
	return &reading, nil
}

func (r *MongoReadingRepository) CountBySensor(ctx context.Context, sensorID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"sensorId": sensorID})
	if err != nil {
		return 0, fmt.Errorf("counting readings for sensor %s: %w", sensorID.Hex(), err)
	}
	return count, nil
}

func (r *MongoReadingRepository) Insert(ctx context.Context, reading *models.Reading) error {
	if reading.ID.IsZero() {
		reading.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, reading); err != nil {
		return fmt.Errorf("inserting reading: %w", err)
	}
	return nil
}

func (r *MongoReadingRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Reading, error) {
	var reading models.Reading
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&reading)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("updating reading %s: %w", id.Hex(), err)
	}
	return &reading, nil
}

func (r *MongoReadingRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("deleting reading %s: %w", id.Hex(), err)
	}
	return result.DeletedCount > 0, nil
}
