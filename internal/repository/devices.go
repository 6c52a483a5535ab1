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

// DeviceRepository is the store accessor for the devices collection. Find
// methods return (nil, nil) when no document matches.
type DeviceRepository interface {
	List(ctx context.Context) ([]models.Device, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Device, error)
	FindBySerialNumber(ctx context.Context, serialNumber string) (*models.Device, error)
	Insert(ctx context.Context, device *models.Device) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Device, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// MongoDeviceRepository implements DeviceRepository over MongoDB.
type MongoDeviceRepository struct {
	collection *mongo.Collection
}

func NewMongoDeviceRepository(store *Store) *MongoDeviceRepository {
	return &MongoDeviceRepository{collection: store.db.Collection(devicesCollection)}
}

func (r *MongoDeviceRepository) List(ctx context.Context) ([]models.Device, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}
	devices := []models.Device{}
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, fmt.Errorf("decoding devices: %w", err)
	}
	return devices, nil
}

func (r *MongoDeviceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Device, error) {
	var device models.Device
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&device)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding device %s: %w", id.Hex(), err)
	}
	return &device, nil
}

func (r *MongoDeviceRepository) FindBySerialNumber(ctx context.Context, serialNumber string) (*models.Device, error) {
	var device models.Device
	err := r.collection.FindOne(ctx, bson.M{"serialNumber": serialNumber}).Decode(&device)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding device by serial number: %w", err)
	}
	return &device, nil
}

func (r *MongoDeviceRepository) Insert(ctx context.Context, device *models.Device) error {
	if device.ID.IsZero() {
		device.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, device); err != nil {
		return fmt.Errorf("inserting device: %w", err)
	}
	return nil
}

func (r *MongoDeviceRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Device, error) {
	var device models.Device
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&device)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("updating device %s: %w", id.Hex(), err)
	}
	return &device, nil
}

func (r *MongoDeviceRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("deleting device %s: %w", id.Hex(), err)
	}
	return result.DeletedCount > 0, nil
}
