// Package controller adapts HTTP requests to service calls: path and body
// parsing on the way in, JSON rendering and APIError mapping on the way
// out. Controllers never contain business rules.
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"SensorGrid.mongoDB/internal/models"
)

// pathID extracts the {id} path parameter.
func pathID(r *http.Request) string {
	return mux.Vars(r)["id"]
}

// decodeBody decodes a JSON request body into dst. Typed decoding rejects
// wrong-typed fields (a non-boolean isActive, for example) along with
// malformed JSON.
func decodeBody(r *http.Request, dst interface{}) *models.APIError {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return models.BadRequest("invalid request payload")
	}
	return nil
}
