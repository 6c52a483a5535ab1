package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Zone is a physical area that groups devices.
type Zone struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateZoneInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	// IsActive defaults to true when omitted.
	IsActive *bool `json:"isActive"`
}

// UpdateZoneInput carries a partial update; nil fields are left untouched.
type UpdateZoneInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}
