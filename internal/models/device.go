package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Allowed device statuses.
const (
	DeviceStatusActive      = "active"
	DeviceStatusMaintenance = "maintenance"
	DeviceStatusOffline     = "offline"
)

// Device is a piece of hardware installed in a zone and owned by a user.
// Sensors is an ordered list of sensor ids; the references are weak, the
// sensors themselves live in their own collection.
type Device struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	SerialNumber string               `bson:"serialNumber" json:"serialNumber"`
	Model        string               `bson:"model,omitempty" json:"model,omitempty"`
	OwnerID      primitive.ObjectID   `bson:"ownerId" json:"ownerId"`
	ZoneID       primitive.ObjectID   `bson:"zoneId" json:"zoneId"`
	InstalledAt  time.Time            `bson:"installedAt" json:"installedAt"`
	Status       string               `bson:"status" json:"status"`
	Sensors      []primitive.ObjectID `bson:"sensors" json:"sensors"`
}

type CreateDeviceInput struct {
	SerialNumber string   `json:"serialNumber" validate:"required"`
	Model        string   `json:"model"`
	OwnerID      string   `json:"ownerId" validate:"required"`
	ZoneID       string   `json:"zoneId" validate:"required"`
	Status       string   `json:"status" validate:"omitempty,oneof=active maintenance offline"`
	Sensors      []string `json:"sensors"`
}

// UpdateDeviceInput carries a partial update; nil fields are left untouched.
type UpdateDeviceInput struct {
	SerialNumber *string   `json:"serialNumber"`
	Model        *string   `json:"model"`
	OwnerID      *string   `json:"ownerId"`
	ZoneID       *string   `json:"zoneId"`
	Status       *string   `json:"status" validate:"omitempty,oneof=active maintenance offline"`
	Sensors      *[]string `json:"sensors"`
}
