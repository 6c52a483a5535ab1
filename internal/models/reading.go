package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reading is a single measurement reported by a sensor.
type Reading struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SensorID primitive.ObjectID `bson:"sensorId" json:"sensorId"`
	Time     time.Time          `bson:"time" json:"time"`
	Value    float64            `bson:"value" json:"value"`
}

type CreateReadingInput struct {
	SensorID string `json:"sensorId" validate:"required"`
	// Time defaults to the creation time when omitted.
	Time *time.Time `json:"time"`
	// Value is a pointer so that an explicit 0 is distinguishable from a
	// missing field.
	Value *float64 `json:"value" validate:"required"`
}

// UpdateReadingInput carries a partial update; nil fields are left untouched.
type UpdateReadingInput struct {
	SensorID *string    `json:"sensorId"`
	Time     *time.Time `json:"time"`
	Value    *float64   `json:"value"`
}
