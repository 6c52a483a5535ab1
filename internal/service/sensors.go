package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"SensorGrid.mongoDB/internal/models"
	"SensorGrid.mongoDB/internal/repository"
	"SensorGrid.mongoDB/internal/validation"
)

// SensorService enforces the sensor business rules: location must parse as
// a "lat,lng" pair, and a sensor with associated readings cannot be
// deleted until they are removed or reassigned.
type SensorService struct {
	sensors  repository.SensorRepository
	readings repository.ReadingRepository
}

func NewSensorService(sensors repository.SensorRepository, readings repository.ReadingRepository) *SensorService {
	return &SensorService{sensors: sensors, readings: readings}
}

func (s *SensorService) List(ctx context.Context) ([]models.Sensor, error) {
	sensors, err := s.sensors.List(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "list sensors")
	}
	return sensors, nil
}

func (s *SensorService) GetByID(ctx context.Context, id string) (*models.Sensor, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	sensor, err := s.sensors.FindByID(ctx, oid)
	if err != nil {
		return nil, storeError(ctx, err, "find sensor")
	}
	if sensor == nil {
		return nil, models.NotFound("sensor not found")
	}
	return sensor, nil
}

func (s *SensorService) Create(ctx context.Context, in models.CreateSensorInput) (*models.Sensor, error) {
	if apiErr := validation.ValidateStruct(in); apiErr != nil {
		return nil, apiErr
	}

	now := time.Now().UTC()
	sensor := &models.Sensor{
		Type:        in.Type,
		Unit:        in.Unit,
		Model:       in.Model,
		Location:    in.Location,
		IsActive:    true,
		InstalledAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsActive != nil {
		sensor.IsActive = *in.IsActive
	}
	if in.DeviceID != "" {
		deviceID, apiErr := parseRefID("deviceId", in.DeviceID)
		if apiErr != nil {
			return nil, apiErr
		}
		sensor.DeviceID = &deviceID
	}

	if err := s.sensors.Insert(ctx, sensor); err != nil {
		return nil, storeError(ctx, err, "create sensor")
	}
	return sensor, nil
}

func (s *SensorService) Update(ctx context.Context, id string, in models.UpdateSensorInput) (*models.Sensor, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validation.ValidateStruct(in); apiErr != nil {
		return nil, apiErr
	}

	set := bson.M{}
	if in.Type != nil {
		set["type"] = *in.Type
	}
	if in.Unit != nil {
		set["unit"] = *in.Unit
	}
	if in.Model != nil {
		set["model"] = *in.Model
	}
	if in.Location != nil {
		set["location"] = *in.Location
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}
	if in.DeviceID != nil {
		deviceID, apiErr := parseRefID("deviceId", *in.DeviceID)
		if apiErr != nil {
			return nil, apiErr
		}
		set["deviceId"] = deviceID
	}

	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	sensor, err := s.sensors.UpdateByID(ctx, oid, set)
	if err != nil {
		return nil, storeError(ctx, err, "update sensor")
	}
	if sensor == nil {
		return nil, models.NotFound("sensor not found")
	}
	return sensor, nil
}

func (s *SensorService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}

	sensor, err := s.sensors.FindByID(ctx, oid)
	if err != nil {
		return nil, storeError(ctx, err, "find sensor")
	}
	if sensor == nil {
		return nil, models.NotFound("sensor not found")
	}

	// Referential guard: dependent readings must be removed or reassigned
	// before the sensor can go.
	count, err := s.readings.CountBySensor(ctx, oid)
	if err != nil {
		return nil, storeError(ctx, err, "count sensor readings")
	}
	if count > 0 {
		return nil, models.BadRequest("cannot delete a sensor with associated readings; delete or reassign them first")
	}

	deleted, err := s.sensors.DeleteByID(ctx, oid)
	if err != nil {
		return nil, storeError(ctx, err, "delete sensor")
	}
	if !deleted {
		return nil, models.NotFound("sensor not found")
	}
	return &models.DeleteResult{ID: id, Message: "sensor deleted"}, nil
}
