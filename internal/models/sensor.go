package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Allowed sensor types.
const (
	SensorTypeTemperature = "temperature"
	SensorTypeHumidity    = "humidity"
	SensorTypeCO2         = "co2"
	SensorTypeNoise       = "noise"
)

// Allowed measurement units. The degree sign is the Unicode U+00B0
// character everywhere.
const (
	SensorUnitCelsius = "°C"
	SensorUnitPercent = "%"
	SensorUnitPPM     = "ppm"
)

// Sensor measures one physical quantity at a fixed location. Location is a
// "latitude,longitude" string. DeviceID is an optional back-reference to
// the device the sensor is mounted on.
type Sensor struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type        string              `bson:"type" json:"type"`
	Unit        string              `bson:"unit" json:"unit"`
	Model       string              `bson:"model" json:"model"`
	Location    string              `bson:"location" json:"location"`
	IsActive    bool                `bson:"isActive" json:"isActive"`
	DeviceID    *primitive.ObjectID `bson:"deviceId,omitempty" json:"deviceId,omitempty"`
	InstalledAt time.Time           `bson:"installedAt" json:"installedAt"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type CreateSensorInput struct {
	Type     string `json:"type" validate:"required,oneof=temperature humidity co2 noise"`
	Unit     string `json:"unit" validate:"required,oneof=°C % ppm"`
	Model    string `json:"model" validate:"required"`
	Location string `json:"location" validate:"required,latlng"`
	// IsActive defaults to true when omitted.
	IsActive *bool  `json:"isActive"`
	DeviceID string `json:"deviceId"`
}

// UpdateSensorInput carries a partial update; nil fields are left untouched.
type UpdateSensorInput struct {
	Type     *string `json:"type" validate:"omitempty,oneof=temperature humidity co2 noise"`
	Unit     *string `json:"unit" validate:"omitempty,oneof=°C % ppm"`
	Model    *string `json:"model"`
	Location *string `json:"location" validate:"omitempty,latlng"`
	IsActive *bool   `json:"isActive"`
	DeviceID *string `json:"deviceId"`
}
