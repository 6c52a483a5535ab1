package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"SensorGrid.mongoDB/internal/models"
	"SensorGrid.mongoDB/internal/repository"
	"SensorGrid.mongoDB/internal/validation"
)

// ZoneService enforces the zone business rules: unique name, re-checked on
// rename against every other zone.
type ZoneService struct {
	zones repository.ZoneRepository
}

func NewZoneService(zones repository.ZoneRepository) *ZoneService {
	return &ZoneService{zones: zones}
}

func (s *ZoneService) List(ctx context.Context) ([]models.Zone, error) {
	zones, err := s.zones.List(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "list zones")
	}
	return zones, nil
}

func (s *ZoneService) GetByID(ctx context.Context, id string) (*models.Zone, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	zone, err := s.zones.FindByID(ctx, oid)
	if err != nil {
		return nil, storeError(ctx, err, "find zone")
	}
	if zone == nil {
		return nil, models.NotFound("zone not found")
	}
	return zone, nil
}

func (s *ZoneService) Create(ctx context.Context, in models.CreateZoneInput) (*models.Zone, error) {
	if apiErr := validation.ValidateStruct(in); apiErr != nil {
		return nil, apiErr
	}

	existing, err := s.zones.FindByName(ctx, in.Name)
	if err != nil {
		return nil, storeError(ctx, err, "check zone name")
	}
	if existing != nil {
		return nil, models.Conflict("a zone with that name already exists")
	}

	now := time.Now().UTC()
	zone := &models.Zone{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsActive != nil {
		zone.IsActive = *in.IsActive
	}

	if err := s.zones.Insert(ctx, zone); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, models.Conflict("a zone with that name already exists")
		}
		return nil, storeError(ctx, err, "create zone")
	}
	return zone, nil
}

func (s *ZoneService) Update(ctx context.Context, id string, in models.UpdateZoneInput) (*models.Zone, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validation.ValidateStruct(in); apiErr != nil {
		return nil, apiErr
	}

	set := bson.M{}
	if in.Name != nil {
		// A rename must not collide with a different zone; matching the
		// record's own current name is fine.
		existing, err := s.zones.FindByName(ctx, *in.Name)
		if err != nil {
			return nil, storeError(ctx, err, "check zone name")
		}
		if existing != nil && existing.ID != oid {
			return nil, models.Conflict("another zone with that name already exists")
		}
		set["name"] = *in.Name
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}

	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	zone, err := s.zones.UpdateByID(ctx, oid, set)
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, models.Conflict("another zone with that name already exists")
		}
		return nil, storeError(ctx, err, "update zone")
	}
	if zone == nil {
		return nil, models.NotFound("zone not found")
	}
	return zone, nil
}

func (s *ZoneService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	deleted, err := s.zones.DeleteByID(ctx, oid)
	if err != nil {
		return nil, storeError(ctx, err, "delete zone")
	}
	if !deleted {
		return nil, models.NotFound("zone not found")
	}
	return &models.DeleteResult{ID: id, Message: "zone deleted"}, nil
}
