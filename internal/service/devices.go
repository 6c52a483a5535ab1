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

// DeviceService enforces the device business rules: unique serial number,
// ownerId and zoneId must reference existing records at creation and
// whenever changed, status restricted to the known enum.
type DeviceService struct {
	devices repository.DeviceRepository
	users   repository.UserRepository
	zones   repository.ZoneRepository
}

func NewDeviceService(devices repository.DeviceRepository, users repository.UserRepository, zones repository.ZoneRepository) *DeviceService {
	return &DeviceService{devices: devices, users: users, zones: zones}
}

func (s *DeviceService) List(ctx context.Context) ([]models.Device, error) {
	devices, err := s.devices.List(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "list devices")
	}
	return devices, nil
}

func (s *DeviceService) GetByID(ctx context.Context, id string) (*models.Device, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	device, err := s.devices.FindByID(ctx, oid)
	if err != nil {
		return nil, storeError(ctx, err, "find device")
	}
	if device == nil {
		return nil, models.NotFound("device not found")
	}
	return device, nil
}

func (s *DeviceService) Create(ctx context.Context, in models.CreateDeviceInput) (*models.Device, error) {
	if apiErr := validation.ValidateStruct(in); apiErr != nil {
		return nil, apiErr
	}

	existing, err := s.devices.FindBySerialNumber(ctx, in.SerialNumber)
	if err != nil {
		return nil, storeError(ctx, err, "check device serial number")
	}
	if existing != nil {
		return nil, models.Conflict("serial number already exists")
	}

	ownerID, apiErr := s.resolveOwner(ctx, in.OwnerID)
	if apiErr != nil {
		return nil, apiErr
	}
	zoneID, apiErr := s.resolveZone(ctx, in.ZoneID)
	if apiErr != nil {
		return nil, apiErr
	}
	sensorIDs, apiErr := parseSensorList(in.Sensors)
	if apiErr != nil {
		return nil, apiErr
	}

	device := &models.Device{
		SerialNumber: in.SerialNumber,
		Model:        in.Model,
		OwnerID:      ownerID,
		ZoneID:       zoneID,
		InstalledAt:  time.Now().UTC(),
		Status:       models.DeviceStatusActive,
		Sensors:      sensorIDs,
	}
	if in.Status != "" {
		device.Status = in.Status
	}

	if err := s.devices.Insert(ctx, device); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, models.Conflict("serial number already exists")
		}
		return nil, storeError(ctx, err, "create device")
	}
	return device, nil
}

func (s *DeviceService) Update(ctx context.Context, id string, in models.UpdateDeviceInput) (*models.Device, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validation.ValidateStruct(in); apiErr != nil {
		return nil, apiErr
	}

	set := bson.M{}
	if in.SerialNumber != nil {
		set["serialNumber"] = *in.SerialNumber
	}
	if in.Model != nil {
		set["model"] = *in.Model
	}
	if in.OwnerID != nil {
		ownerID, apiErr := s.resolveOwner(ctx, *in.OwnerID)
		if apiErr != nil {
			return nil, apiErr
		}
		set["ownerId"] = ownerID
	}
	if in.ZoneID != nil {
		zoneID, apiErr := s.resolveZone(ctx, *in.ZoneID)
		if apiErr != nil {
			return nil, apiErr
		}
		set["zoneId"] = zoneID
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.Sensors != nil {
		sensorIDs, apiErr := parseSensorList(*in.Sensors)
		if apiErr != nil {
			return nil, apiErr
		}
		set["sensors"] = sensorIDs
	}

	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	device, err := s.devices.UpdateByID(ctx, oid, set)
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, models.Conflict("serial number already exists")
		}
		return nil, storeError(ctx, err, "update device")
	}
	if device == nil {
		return nil, models.NotFound("device not found")
	}
	return device, nil
}

func (s *DeviceService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	deleted, err := s.devices.DeleteByID(ctx, oid)
	if err != nil {
		return nil, storeError(ctx, err, "delete device")
	}
	if !deleted {
		return nil, models.NotFound("device not found")
	}
	return &models.DeleteResult{ID: id, Message: "device deleted"}, nil
}

func (s *DeviceService) resolveOwner(ctx context.Context, id string) (primitive.ObjectID, *models.APIError) {
	oid, apiErr := parseRefID("ownerId", id)
	if apiErr != nil {
		return primitive.NilObjectID, apiErr
	}
	owner, err := s.users.FindByID(ctx, oid)
	if err != nil {
		return primitive.NilObjectID, storeError(ctx, err, "resolve device owner")
	}
	if owner == nil {
		return primitive.NilObjectID, models.BadRequest("referenced owner does not exist")
	}
	return oid, nil
}

func (s *DeviceService) resolveZone(ctx context.Context, id string) (primitive.ObjectID, *models.APIError) {
	oid, apiErr := parseRefID("zoneId", id)
	if apiErr != nil {
		return primitive.NilObjectID, apiErr
	}
	zone, err := s.zones.FindByID(ctx, oid)
	if err != nil {
		return primitive.NilObjectID, storeError(ctx, err, "resolve device zone")
	}
	if zone == nil {
		return primitive.NilObjectID, models.BadRequest("referenced zone does not exist")
	}
	return oid, nil
}

// parseSensorList converts the sensor id strings of a device payload. The
// references are weak: ids must be well-formed but are not resolved
// against the sensors collection.
func parseSensorList(ids []string) ([]primitive.ObjectID, *models.APIError) {
	sensorIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, apiErr := parseRefID("sensors", id)
		if apiErr != nil {
			return nil, apiErr
		}
		sensorIDs = append(sensorIDs, oid)
	}
	return sensorIDs, nil
}
