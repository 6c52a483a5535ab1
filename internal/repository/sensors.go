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

// SensorRepository is the store accessor for the sensors collection. Find
// methods return (nil, nil) when no document matches. UpdateByID refreshes
// the updatedAt timestamp.
type SensorRepository interface {
	List(ctx context.Context) ([]models.Sensor, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Sensor, error)
	Insert(ctx context.Context, sensor *models.Sensor) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Sensor, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// MongoSensorRepository implements SensorRepository over MongoDB.
type MongoSensorRepository struct {
	collection *mongo.Collection
}

func NewMongoSensorRepository(store *Store) *MongoSensorRepository {
	return &MongoSensorRepository{collection: store.db.Collection(sensorsCollection)}
}

func (r *MongoSensorRepository) List(ctx context.Context) ([]models.Sensor, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing sensors: %w", err)
	}
	sensors := []models.Sensor{}
	if err := cursor.All(ctx, &sensors); err != nil {
		return nil, fmt.Errorf("decoding sensors: %w", err)
	}
	return sensors, nil
}

func (r *MongoSensorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Sensor, error) {
	var sensor models.Sensor
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sensor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding sensor %s: %w", id.Hex(), err)
	}
	return &sensor, nil
}

func (r *MongoSensorRepository) Insert(ctx context.Context, sensor *models.Sensor) error {
	if sensor.ID.IsZero() {
		sensor.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, sensor); err != nil {
		return fmt.Errorf("inserting sensor: %w", err)
	}
	return nil
}

func (r *MongoSensorRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Sensor, error) {
	withStamp := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range set {
		withStamp[k] = v
	}

	var sensor models.Sensor
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": withStamp},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&sensor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("updating sensor %s: %w", id.Hex(), err)
	}
	return &sensor, nil
}

func (r *MongoSensorRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("deleting sensor %s: %w", id.Hex(), err)
	}
	return result.DeletedCount > 0, nil
}
