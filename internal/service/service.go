// Package service holds the validation and business rules for the five
// entity types. Each service exposes the same contract: List, GetByID,
// Create, Update (partial, merge semantics), Delete. Every failure path
// produces exactly one typed APIError; store failures are logged here and
// surface as a generic internal error.
//
// Uniqueness and referential checks are explicit lookups performed right
// before the write. They are best-effort pre-checks that exist to produce
// a friendly message; the unique indexes created by the repository layer
// are the authoritative guard, and a duplicate-key error from the store is
// translated into the same Conflict the pre-check would have produced.
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"SensorGrid.mongoDB/internal/logging"
	"SensorGrid.mongoDB/internal/models"
)

// parseID converts a path id into an ObjectID. Malformed ids are rejected
// with a BadRequest before any store lookup, uniformly for every entity.
func parseID(id string) (primitive.ObjectID, *models.APIError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.BadRequest("invalid id format")
	}
	return oid, nil
}

// parseRefID is parseID for reference fields carried in request bodies;
// the message names the offending field.
func parseRefID(field, id string) (primitive.ObjectID, *models.APIError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.BadRequest("invalid " + field + " format")
	}
	return oid, nil
}

// storeError logs the underlying store failure and returns the generic
// internal error; driver details never reach the client.
func storeError(ctx context.Context, err error, op string) *models.APIError {
	logging.Ctx(ctx).Error().Err(err).Str("op", op).Msg("store operation failed")
	return models.Internal()
}
