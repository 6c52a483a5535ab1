package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"SensorGrid.mongoDB/internal/logging"
	"SensorGrid.mongoDB/internal/models"
)

// RespondWithJSON sends a JSON success response. A nil payload writes the
// status code with an empty body (used for 204 responses).
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// RespondWithError renders any error as the uniform {"message": ...} body.
// Errors that are not APIErrors become a generic 500; their details are
// logged server-side and never reach the client.
func RespondWithError(w http.ResponseWriter, err error) {
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		logging.Error().Err(err).Msg("unclassified error reached the HTTP boundary")
		apiErr = models.Internal()
	}
	RespondWithJSON(w, apiErr.StatusCode, apiErr)
}
