package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"SensorGrid.mongoDB/internal/models"
	"SensorGrid.mongoDB/internal/repository"
	"SensorGrid.mongoDB/internal/validation"
)

// ReadingRecorder mirrors created readings into a time-series backend.
// Recording is best-effort and must never fail the CRUD operation.
type ReadingRecorder interface {
	Record(ctx context.Context, reading models.Reading)
}

// ReadingService enforces the reading business rules: sensorId must
// reference an existing sensor at creation and whenever changed.
type ReadingService struct {
	readings repository.ReadingRepository
	sensors  repository.SensorRepository
	recorder ReadingRecorder
}

// NewReadingService wires the reading service; recorder may be nil when no
// time-series mirror is configured.
func NewReadingService(readings repository.ReadingRepository, sensors repository.SensorRepository, recorder ReadingRecorder) *ReadingService {
	return &ReadingService{readings: readings, sensors: sensors, recorder: recorder}
}

func (s *ReadingService) List(ctx context.Context) ([]models.Reading, error) {
	readings, err := s.readings.List(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "list readings")
	}
	return readings, nil
}

func (s *ReadingService) GetByID(ctx context.Context, id string) (*models.Reading, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	reading, err := s.readings.FindByID(ctx, oid)
	if err != nil {
		return nil, storeError(ctx, err, "find reading")
	}
	if reading == nil {
		return nil, models.NotFound("reading not found")
	}
	return reading, nil
}

func (s *ReadingService) Create(ctx context.Context, in models.CreateReadingInput) (*models.Reading, error) {
	if apiErr := validation.ValidateStruct(in); apiErr != nil {
		return nil, apiErr
	}

	sensorID, apiErr := s.resolveSensor(ctx, in.SensorID)
	if apiErr != nil {
		return nil, apiErr
	}

	reading := &models.Reading{
		SensorID: sensorID,
		Time:     time.Now().UTC(),
		Value:    *in.Value,
	}
	if in.Time != nil {
		reading.Time = *in.Time
	}

	if err := s.readings.Insert(ctx, reading); err != nil {
		return nil, storeError(ctx, err, "create reading")
	}

	if s.recorder != nil {
		s.recorder.Record(ctx, *reading)
	}
	return reading, nil
}

func (s *ReadingService) Update(ctx context.Context, id string, in models.UpdateReadingInput) (*models.Reading, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validation.ValidateStruct(in); apiErr != nil {
		return nil, apiErr
	}

	set := bson.M{}
	if in.SensorID != nil {
		sensorID, apiErr := s.resolveSensor(ctx, *in.SensorID)
		if apiErr != nil {
			return nil, apiErr
		}
		set["sensorId"] = sensorID
	}
	if in.Time != nil {
		set["time"] = *in.Time
	}
	if in.Value != nil {
		set["value"] = *in.Value
	}

	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	reading, err := s.readings.UpdateByID(ctx, oid, set)
	if err != nil {
		return nil, storeError(ctx, err, "update reading")
	}
	if reading == nil {
		return nil, models.NotFound("reading not found")
	}
	return reading, nil
}

func (s *ReadingService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	deleted, err := s.readings.DeleteByID(ctx, oid)
	if err != nil {
		return nil, storeError(ctx, err, "delete reading")
	}
	if !deleted {
		return nil, models.NotFound("reading not found")
	}
	return &models.DeleteResult{ID: id, Message: "reading deleted"}, nil
}

func (s *ReadingService) resolveSensor(ctx context.Context, id string) (primitive.ObjectID, *models.APIError) {
	oid, apiErr := parseRefID("sensorId", id)
	if apiErr != nil {
		return oid, apiErr
	}
	sensor, err := s.sensors.FindByID(ctx, oid)
	if err != nil {
		return oid, storeError(ctx, err, "resolve reading sensor")
	}
	if sensor == nil {
		return oid, models.BadRequest("referenced sensor does not exist")
	}
	return oid, nil
}
